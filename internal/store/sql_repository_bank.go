package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/models"
)

// bankRepository is the database/sql implementation of [BankRepository]
// working on the "banks" table.
type bankRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewBankRepository constructs a [BankRepository] backed by db.
func NewBankRepository(db *DB, logger *logger.Logger) BankRepository {
	logger.Debug().Msg("creating bank repository")
	return &bankRepository{
		db:     db,
		logger: logger,
	}
}

func (r *bankRepository) SaveBank(ctx context.Context, bank models.Bank) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBankQuery(r.db.builder, bank)
	if err != nil {
		log.Err(err).Str("func", "*bankRepository.SaveBank").Msg("failed to build query")
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		duplicate, wrapped := r.db.classify(err)
		if duplicate {
			return ErrBankAlreadyExists
		}
		log.Err(err).Str("func", "*bankRepository.SaveBank").Str("swift_code", bank.SwiftCode).Msg("failed to insert bank")
		return wrapped
	}

	return nil
}

// SaveBanks upserts banks in batches inside a single transaction.
func (r *bankRepository) SaveBanks(ctx context.Context, banks ...models.Bank) (int, error) {
	log := logger.FromContext(ctx)

	if len(banks) == 0 {
		return 0, nil
	}

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		for i, batch := range chunk(banks, insertBatchSize) {
			query, args, err := buildUpsertBanksQuery(r.db.builder, batch)
			if err != nil {
				return err
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).Str("func", "*bankRepository.SaveBanks").Int("batch", i).Msg("failed to upsert banks")
				_, wrapped := r.db.classify(err)
				return wrapped
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(banks), nil
}

func (r *bankRepository) FindBank(ctx context.Context, swiftCode string) (models.Bank, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBankQuery(r.db.builder, swiftCode)
	if err != nil {
		log.Err(err).Str("func", "*bankRepository.FindBank").Msg("failed to build query")
		return models.Bank{}, err
	}

	var bank models.Bank
	err = r.db.QueryRowContext(ctx, query, args...).Scan(bankDestinations(&bank)...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bank{}, ErrBankNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*bankRepository.FindBank").Str("swift_code", swiftCode).Msg("failed to find bank")
		_, wrapped := r.db.classify(err)
		return models.Bank{}, wrapped
	}

	return bank, nil
}

func (r *bankRepository) FindBranches(ctx context.Context, headquarterSwiftCode string) ([]models.Bank, error) {
	query, args, err := buildSelectBranchesQuery(r.db.builder, headquarterSwiftCode)
	if err != nil {
		return nil, err
	}

	return r.queryBanks(ctx, "*bankRepository.FindBranches", query, args)
}

func (r *bankRepository) FindBanksByCountry(ctx context.Context, countryISO2 string) ([]models.Bank, error) {
	query, args, err := buildSelectBanksByCountryQuery(r.db.builder, countryISO2)
	if err != nil {
		return nil, err
	}

	return r.queryBanks(ctx, "*bankRepository.FindBanksByCountry", query, args)
}

func (r *bankRepository) CountBranches(ctx context.Context, headquarterSwiftCode string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountBranchesQuery(r.db.builder, headquarterSwiftCode)
	if err != nil {
		return 0, err
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*bankRepository.CountBranches").Msg("failed to count branches")
		_, wrapped := r.db.classify(err)
		return 0, wrapped
	}

	return count, nil
}

func (r *bankRepository) DeleteBank(ctx context.Context, swiftCode string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBankQuery(r.db.builder, swiftCode)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bankRepository.DeleteBank").Str("swift_code", swiftCode).Msg("failed to delete bank")
		_, wrapped := r.db.classify(err)
		return wrapped
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrBankNotFound
	}

	return nil
}

func (r *bankRepository) DeleteAllBanks(ctx context.Context) error {
	query, args, err := buildQuery(r.db.builder.Delete(tableBanks))
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bankRepository.DeleteAllBanks").Msg("failed to delete banks")
		_, wrapped := r.db.classify(err)
		return wrapped
	}

	return nil
}

func (r *bankRepository) queryBanks(ctx context.Context, fn, query string, args []any) ([]models.Bank, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query")
		_, wrapped := r.db.classify(err)
		return nil, wrapped
	}
	defer rows.Close()

	banks := make([]models.Bank, 0)
	for rows.Next() {
		var bank models.Bank
		if err = rows.Scan(bankDestinations(&bank)...); err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan bank row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		banks = append(banks, bank)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error iterating bank rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return banks, nil
}

func bankDestinations(bank *models.Bank) []any {
	return []any{
		&bank.SwiftCode,
		&bank.BankName,
		&bank.Address,
		&bank.IsHeadquarter,
		&bank.CountryISO2,
		&bank.HeadquarterSwiftCode,
	}
}
