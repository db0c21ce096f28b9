package backend

import (
	"context"
	"fmt"
	"log/slog"

	"bridezilla/internal/amqp"
	"bridezilla/internal/storage"
	"bridezilla/internal/store/localstore"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteBackend(config)
	case DemoBackend:
		return f.createDemoBackend(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteBackend(config Config) (*Result, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize SQLite repository: %w", err)
	}

	amqpClient := f.connectAMQP(config)

	f.logger.Info("Initialized SQLite backend",
		"db_path", config.SQLiteDBPath,
		"amqp_enabled", amqpClient != nil)

	return &Result{
		Backend: repo,
		AMQP:    amqpClient,
		Cleanup: repo.Close,
	}, nil
}

func (f *DefaultFactory) createDemoBackend(config Config) (*Result, error) {
	var kv localstore.KV
	if config.DataDirectory != "" {
		kv = localstore.NewDirKV(config.DataDirectory)
	} else {
		kv = localstore.NewMapKV()
	}

	demoStore := localstore.New(kv)
	demoStore.Initialize()
	adapter := localstore.NewAdapter(demoStore)

	amqpClient := f.connectAMQP(config)

	f.logger.Info("Initialized demo backend",
		"data_directory", config.DataDirectory,
		"amqp_enabled", amqpClient != nil)

	return &Result{
		Backend: adapter,
		Demo:    adapter,
		AMQP:    amqpClient,
		Cleanup: nil,
	}, nil
}

// connectAMQP dials the broker when configured. A broker outage only
// disables activity messaging, never the backend itself.
func (f *DefaultFactory) connectAMQP(config Config) *amqp.Client {
	if config.AMQPURL == "" {
		return nil
	}
	client, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
	if err != nil {
		f.logger.Warn("Failed to initialize AMQP client, continuing without activity messaging", "error", err)
		return nil
	}
	f.logger.Info("Initialized AMQP client",
		"exchange", config.AMQPExchange,
		"queue", config.AMQPQueue)
	return client
}
