package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/models"
)

// mongoBankRepository implements [BankRepository] on the banks collection.
type mongoBankRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewMongoBankRepository(db *MongoDB, logger *logger.Logger) BankRepository {
	logger.Debug().Msg("creating mongo bank repository")
	return &mongoBankRepository{
		collection: db.database.Collection(collectionBanks),
		logger:     logger,
	}
}

func (r *mongoBankRepository) SaveBank(ctx context.Context, bank models.Bank) error {
	_, err := r.collection.InsertOne(ctx, newBankDocument(bank))
	if mongo.IsDuplicateKeyError(err) {
		return ErrBankAlreadyExists
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoBankRepository.SaveBank").Str("swift_code", bank.SwiftCode).Msg("failed to insert bank")
		return mongoError(err)
	}

	return nil
}

// SaveBanks replaces or inserts every bank with one unordered bulk write.
func (r *mongoBankRepository) SaveBanks(ctx context.Context, banks ...models.Bank) (int, error) {
	if len(banks) == 0 {
		return 0, nil
	}

	writes := make([]mongo.WriteModel, 0, len(banks))
	for _, bank := range banks {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.D{{Key: fieldID, Value: bank.SwiftCode}}).
			SetReplacement(newBankDocument(bank)).
			SetUpsert(true))
	}

	if _, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoBankRepository.SaveBanks").Int("banks", len(banks)).Msg("failed to upsert banks")
		return 0, mongoError(err)
	}

	return len(banks), nil
}

func (r *mongoBankRepository) FindBank(ctx context.Context, swiftCode string) (models.Bank, error) {
	var doc bankDocument
	err := r.collection.FindOne(ctx, bson.D{{Key: fieldID, Value: swiftCode}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Bank{}, ErrBankNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoBankRepository.FindBank").Str("swift_code", swiftCode).Msg("failed to find bank")
		return models.Bank{}, mongoError(err)
	}

	return doc.toBank(), nil
}

func (r *mongoBankRepository) FindBranches(ctx context.Context, headquarterSwiftCode string) ([]models.Bank, error) {
	return r.find(ctx, "*mongoBankRepository.FindBranches", bson.D{{Key: fieldHeadquarterSwiftCode, Value: headquarterSwiftCode}})
}

func (r *mongoBankRepository) FindBanksByCountry(ctx context.Context, countryISO2 string) ([]models.Bank, error) {
	return r.find(ctx, "*mongoBankRepository.FindBanksByCountry", bson.D{{Key: fieldCountryISO2, Value: countryISO2}})
}

func (r *mongoBankRepository) CountBranches(ctx context.Context, headquarterSwiftCode string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{{Key: fieldHeadquarterSwiftCode, Value: headquarterSwiftCode}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoBankRepository.CountBranches").Msg("failed to count branches")
		return 0, mongoError(err)
	}

	return count, nil
}

func (r *mongoBankRepository) DeleteBank(ctx context.Context, swiftCode string) error {
	result, err := r.collection.DeleteOne(ctx, bson.D{{Key: fieldID, Value: swiftCode}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoBankRepository.DeleteBank").Str("swift_code", swiftCode).Msg("failed to delete bank")
		return mongoError(err)
	}
	if result.DeletedCount == 0 {
		return ErrBankNotFound
	}

	return nil
}

func (r *mongoBankRepository) DeleteAllBanks(ctx context.Context) error {
	if _, err := r.collection.DeleteMany(ctx, bson.D{}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoBankRepository.DeleteAllBanks").Msg("failed to delete banks")
		return mongoError(err)
	}

	return nil
}

func (r *mongoBankRepository) find(ctx context.Context, fn string, filter bson.D) ([]models.Bank, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: fieldID, Value: 1}}))
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to query banks")
		return nil, mongoError(err)
	}

	var docs []bankDocument
	if err = cursor.All(ctx, &docs); err != nil {
		log.Err(err).Str("func", fn).Msg("failed to decode banks")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, mongoError(err))
	}

	banks := make([]models.Bank, 0, len(docs))
	for _, doc := range docs {
		banks = append(banks, doc.toBank())
	}

	return banks, nil
}
