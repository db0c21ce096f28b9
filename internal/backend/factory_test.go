package backend

import (
	"context"
	"path/filepath"
	"testing"
)

func TestCreateDemoBackendSeedsData(t *testing.T) {
	ctx := context.Background()
	factory := NewFactory(nil)

	result, err := factory.CreateBackend(ctx, Config{Type: DemoBackend})
	if err != nil {
		t.Fatalf("create demo backend: %v", err)
	}
	if result.Demo == nil {
		t.Fatal("demo backend must expose the demo controller")
	}

	vendors, err := result.Backend.ListVendors(ctx)
	if err != nil {
		t.Fatalf("list vendors: %v", err)
	}
	if len(vendors) == 0 {
		t.Fatal("demo backend must start with seeded vendors")
	}
}

func TestCreateSQLiteBackend(t *testing.T) {
	ctx := context.Background()
	factory := NewFactory(nil)

	result, err := factory.CreateBackend(ctx, Config{
		Type:         SQLiteBackend,
		SQLiteDBPath: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("create sqlite backend: %v", err)
	}
	defer result.Cleanup()

	if result.Demo != nil {
		t.Fatal("sqlite backend must not expose a demo controller")
	}
	vendors, err := result.Backend.ListVendors(ctx)
	if err != nil {
		t.Fatalf("list vendors: %v", err)
	}
	if len(vendors) != 0 {
		t.Fatalf("sqlite backend must start empty, got %d vendors", len(vendors))
	}
}

func TestCreateBackendRejectsUnknownType(t *testing.T) {
	factory := NewFactory(nil)

	if _, err := factory.CreateBackend(context.Background(), Config{Type: "sheets"}); err == nil {
		t.Fatal("expected error for unknown backend type")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "demo without data dir", config: Config{Type: DemoBackend}, wantErr: false},
		{name: "demo with data dir", config: Config{Type: DemoBackend, DataDirectory: "./data"}, wantErr: false},
		{name: "sqlite with path", config: Config{Type: SQLiteBackend, SQLiteDBPath: "./db"}, wantErr: false},
		{name: "sqlite without path", config: Config{Type: SQLiteBackend}, wantErr: true},
		{name: "unknown type", config: Config{Type: "memory"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
