// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup. All violations are joined.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.Storage.Driver {
	case DriverMongo:
		if cfg.Storage.Mongo.URI == "" || cfg.Storage.Mongo.Database == "" {
			errs = append(errs, fmt.Errorf("%w: mongo driver needs uri and database", ErrInvalidStorageConfigs))
		}
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			errs = append(errs, fmt.Errorf("%w: %s driver needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.Driver))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver))
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		errs = append(errs, fmt.Errorf("%w: no server address", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs))
	}

	if cfg.App.TokenSignKey != "" && (cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0) {
		errs = append(errs, fmt.Errorf("%w: token sign key needs issuer and positive duration", ErrInvalidAppConfigs))
	}

	return errors.Join(errs...)
}

// validate checks the settings swiftctl needs to reach the server.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
