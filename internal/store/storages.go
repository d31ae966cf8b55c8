package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-swift-codes/internal/config"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
)

// Storages aggregates the repositories of one storage backend together with
// the connection behind them.
type Storages struct {
	BankRepository    BankRepository
	CountryRepository CountryRepository

	db database
}

// NewStorages connects to the backend selected by cfg.Driver and builds its
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		db, err := NewConnectMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			BankRepository:    NewMongoBankRepository(db, log),
			CountryRepository: NewMongoCountryRepository(db, log),
			db:                db,
		}, nil

	case config.DriverPostgres, config.DriverSQLite:
		connect := NewConnectPostgres
		if cfg.Driver == config.DriverSQLite {
			connect = NewConnectSQLite
		}

		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return NewSQLStorages(db, log), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// NewSQLStorages builds the database/sql repositories on an open DB.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		BankRepository:    NewBankRepository(db, log),
		CountryRepository: NewCountryRepository(db, log),
		db:                db,
	}
}

// Ping checks that the backend is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.Ping(ctx)
}

// Close releases the backend connection.
func (s *Storages) Close(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.Close(ctx)
}
