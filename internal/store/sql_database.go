package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/migrations"
)

// DB is a database/sql connection shared by the SQL repositories together
// with the dialect specific pieces: the goose dialect, the squirrel
// placeholder format and the driver error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, placeholder sq.PlaceholderFormat, classificator ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

func (db *DB) Close(_ context.Context) error {
	return db.DB.Close()
}

// classify returns whether err is a uniqueness violation. Other errors are
// wrapped with ErrExecutingQuery, plus ErrTransient when a retry may help.
func (db *DB) classify(err error) (duplicate bool, wrapped error) {
	classification := NonRetryable
	if db.errorClassificator != nil {
		classification = db.errorClassificator.Classify(err)
	}

	switch classification {
	case Duplicate:
		return true, err
	case Retryable:
		return false, fmt.Errorf("%w: %w: %w", ErrTransient, ErrExecutingQuery, err)
	default:
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// inTx runs fn inside a transaction and commits it when fn succeeds.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
