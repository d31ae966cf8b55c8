package config

import (
	"time"
)

// ClientAdapter holds network settings used by swiftctl.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// Token is attached as a bearer token to mutating requests.
	Token string
}

// ClientApp holds the token parameters swiftctl uses to mint tokens locally.
type ClientApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ClientConfig is the top-level client configuration derived from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig builds the swiftctl configuration from a .env file,
// environment variables, an optional JSON file (CONFIG) and defaults.
//
// Command-line flags are left to the CLI itself, which overrides the
// returned values with its own persistent flags.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder()
	b.validate = func(*StructuredConfig) error { return nil }

	cfg, err := b.withDotEnv(defaultDotEnvFile).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
	}

	return clientCfg, clientCfg.validate()
}

// Validate re-checks the configuration after CLI flags were applied.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
