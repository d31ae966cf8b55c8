package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NetAddress ────────────────────────────────────────────────────────────────

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{name: "localhost", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "ipv4", input: "127.0.0.1:9090", wantHost: "127.0.0.1", wantPort: 9090},
		{name: "empty host", input: ":8080", wantHost: "", wantPort: 8080},
		{name: "surrounding spaces", input: "  localhost:80 ", wantHost: "localhost", wantPort: 80},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:http", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "invalid ip", input: "999.1.1.1:80", wantErr: true},
		{name: "hostname", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, a.Host)
			assert.Equal(t, tt.wantPort, a.Port)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
	assert.Equal(t, ":9090", (&NetAddress{Port: 9090}).String())
}

// ── parseFlags ────────────────────────────────────────────────────────────────

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:8081",
		"-grpc-address", ":9090",
		"-storage", "postgres",
		"-mongo-uri", "mongodb://db:27017",
		"-mongo-db", "banks",
		"-d", "postgres://localhost/swift",
		"-c", "config.json",
		"-version", "1.2.3",
		"-log-level", "info",
		"-token-sign-key", "secret",
		"-token-issuer", "issuer",
		"-token-duration", "2h",
		"-request-timeout", "10s",
		"-shutdown-timeout", "3s",
		"-seed", "codes.csv",
		"-seed-drop",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddress)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "mongodb://db:27017", cfg.Storage.Mongo.URI)
	assert.Equal(t, "banks", cfg.Storage.Mongo.Database)
	assert.Equal(t, "postgres://localhost/swift", cfg.Storage.DB.DSN)
	assert.Equal(t, "config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "codes.csv", cfg.Workers.SeedCSVPath)
	assert.True(t, cfg.Workers.SeedDropExisting)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "alias.json"})
	require.NoError(t, err)
	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := parseFlags([]string{"-request-timeout", "soon"})
	assert.Error(t, err)
}
