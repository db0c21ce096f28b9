package backend

import (
	"context"

	"bridezilla/internal/amqp"
	"bridezilla/internal/store"
)

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result bundles everything the wiring layer gets from a backend factory.
// Demo is non-nil only for the demo backend, AMQP only when a broker URL is
// configured.
type Result struct {
	Backend store.Backend
	Demo    store.DemoController
	AMQP    *amqp.Client
	Cleanup CleanupFunc
}

// Factory creates backends based on configuration
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for backend creation
type Config struct {
	Type Type

	// Demo backend
	DataDirectory string

	// SQLite backend
	SQLiteDBPath string

	// Optional messaging
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// Type selects which store implementation backs the server.
type Type string

const (
	DemoBackend   Type = "demo"
	SQLiteBackend Type = "sqlite"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case DemoBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}
