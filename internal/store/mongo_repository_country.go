package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/models"
)

// mongoCountryRepository implements [CountryRepository] on the countries collection.
type mongoCountryRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewMongoCountryRepository(db *MongoDB, logger *logger.Logger) CountryRepository {
	logger.Debug().Msg("creating mongo country repository")
	return &mongoCountryRepository{
		collection: db.database.Collection(collectionCountries),
		logger:     logger,
	}
}

func (r *mongoCountryRepository) SaveCountry(ctx context.Context, country models.Country) error {
	_, err := r.collection.InsertOne(ctx, newCountryDocument(country))
	if mongo.IsDuplicateKeyError(err) {
		return ErrCountryAlreadyExists
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoCountryRepository.SaveCountry").Str("country_iso2", country.ISO2).Msg("failed to insert country")
		return mongoError(err)
	}

	return nil
}

func (r *mongoCountryRepository) SaveCountries(ctx context.Context, countries ...models.Country) (int, error) {
	if len(countries) == 0 {
		return 0, nil
	}

	writes := make([]mongo.WriteModel, 0, len(countries))
	for _, country := range countries {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.D{{Key: fieldID, Value: country.ISO2}}).
			SetReplacement(newCountryDocument(country)).
			SetUpsert(true))
	}

	if _, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoCountryRepository.SaveCountries").Msg("failed to upsert countries")
		return 0, mongoError(err)
	}

	return len(countries), nil
}

func (r *mongoCountryRepository) FindCountry(ctx context.Context, iso2 string) (models.Country, error) {
	var doc countryDocument
	err := r.collection.FindOne(ctx, bson.D{{Key: fieldID, Value: iso2}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Country{}, ErrCountryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoCountryRepository.FindCountry").Str("country_iso2", iso2).Msg("failed to find country")
		return models.Country{}, mongoError(err)
	}

	return doc.toCountry(), nil
}

func (r *mongoCountryRepository) DeleteAllCountries(ctx context.Context) error {
	if _, err := r.collection.DeleteMany(ctx, bson.D{}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoCountryRepository.DeleteAllCountries").Msg("failed to delete countries")
		return mongoError(err)
	}

	return nil
}
