package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-swift-codes/internal/config"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
)

const dialectPostgres = "pgx"

// NewConnectPostgres opens a pgx connection pool, pings it and applies the
// schema migrations.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrTransient, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	db := newDB(conn, dialectPostgres, sq.Dollar, NewPostgresErrorClassifier(), log)
	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error applying migrations")
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}
