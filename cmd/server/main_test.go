package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-swift-codes/internal/config"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func sqliteConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()
	return &config.StructuredConfig{
		App: config.App{Version: "v1.0.0", TokenIssuer: "swift-codes"},
		Storage: config.Storage{
			Driver: config.DriverSQLite,
			DB:     config.DB{DSN: filepath.Join(t.TempDir(), "swift.db")},
		},
		Server: config.Server{HTTPAddress: "127.0.0.1:0"},
	}
}

// Startup failures after the storages are opened must still close them;
// an open database/sql pool keeps its connection opener goroutine alive.
func TestRun_StartupFailureClosesStorages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *config.StructuredConfig)
		wantErr string
	}{
		{
			name: "missing seed file",
			mutate: func(cfg *config.StructuredConfig) {
				cfg.Workers.SeedCSVPath = filepath.Join(t.TempDir(), "missing.csv")
			},
			wantErr: "error running startup workers",
		},
		{
			name:    "missing version",
			mutate:  func(cfg *config.StructuredConfig) { cfg.App.Version = "" },
			wantErr: "error creating services",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			cfg := sqliteConfig(t)
			tt.mutate(cfg)

			err := run(context.Background(), cfg, logger.Nop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRun_UnknownDriver(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Storage.Driver = "cassandra"

	err := run(context.Background(), cfg, logger.Nop())
	assert.ErrorContains(t, err, "error creating storages")
}
