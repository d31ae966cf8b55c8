package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Duration ──────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "null", input: `null`, want: 0},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
		{name: "malformed", input: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(45 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"45s"`, string(data))
}

// ── parseJSON ─────────────────────────────────────────────────────────────────

func TestParseJSON_FullFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"version":        "3.0.0",
			"log_level":      "warn",
			"token_sign_key": "key",
			"token_issuer":   "iss",
			"token_duration": "1h",
		},
		"storage": map[string]any{
			"driver": "mongo",
			"mongo":  map[string]any{"uri": "mongodb://mongo:27017", "database": "swift", "connect_timeout": "5s"},
			"db":     map[string]any{"dsn": "file.db", "max_open_conns": 3},
		},
		"server": map[string]any{
			"http_address":     "localhost:8000",
			"grpc_address":     "localhost:9000",
			"request_timeout":  "20s",
			"shutdown_timeout": "4s",
		},
		"adapter": map[string]any{
			"http_address":    "http://localhost:8000",
			"request_timeout": "7s",
			"token":           "tok",
		},
		"workers": map[string]any{"seed_csv_path": "seed.csv", "seed_drop_existing": true},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "3.0.0", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, DriverMongo, cfg.Storage.Driver)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Storage.Mongo.URI)
	assert.Equal(t, "swift", cfg.Storage.Mongo.Database)
	assert.Equal(t, 5*time.Second, cfg.Storage.Mongo.ConnectTimeout)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9000", cfg.Server.GRPCAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 4*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "tok", cfg.Adapter.Token)
	assert.Equal(t, "seed.csv", cfg.Workers.SeedCSVPath)
	assert.True(t, cfg.Workers.SeedDropExisting)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}
