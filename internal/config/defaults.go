package config

import "time"

// DefaultBuildVersion is reported by GET /v1/version when App.Version is unset.
// cmd/server overrides it with the linker-provided build version.
var DefaultBuildVersion = "dev"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       DefaultBuildVersion,
			LogLevel:      "debug",
			TokenIssuer:   "swift-codes",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			Driver: DriverMongo,
			Mongo: Mongo{
				URI:            "mongodb://localhost:27017",
				Database:       "swift",
				ConnectTimeout: 10 * time.Second,
			},
			DB: DB{
				MaxOpenConns: 10,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
	}
}
