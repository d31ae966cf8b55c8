package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MKhiriev/go-swift-codes/internal/config"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
)

const (
	collectionBanks     = "banks"
	collectionCountries = "countries"
)

// MongoDB holds the client and database used by the Mongo repositories.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to cfg.URI, pings the primary and ensures the
// lookup indexes on the banks collection.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*MongoDB, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongo")
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongo (ping)")
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("%w: %w", ErrTransient, err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Database).Msg("connected to mongo successfully")

	db := &MongoDB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   log,
	}

	if err = db.ensureIndexes(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating indexes")
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}

	return db, nil
}

func (db *MongoDB) ensureIndexes(ctx context.Context) error {
	_, err := db.database.Collection(collectionBanks).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: fieldCountryISO2, Value: 1}}},
		{Keys: bson.D{{Key: fieldHeadquarterSwiftCode, Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("error creating bank indexes: %w", err)
	}

	return nil
}

func (db *MongoDB) Ping(ctx context.Context) error {
	return mongoError(db.client.Ping(ctx, readpref.Primary()))
}

func (db *MongoDB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// mongoError wraps network errors and timeouts with ErrTransient.
func mongoError(err error) error {
	if err == nil {
		return nil
	}

	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}

	return err
}
