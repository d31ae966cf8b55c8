package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/models"
)

// countryRepository is the database/sql implementation of [CountryRepository].
type countryRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCountryRepository(db *DB, logger *logger.Logger) CountryRepository {
	logger.Debug().Msg("creating country repository")
	return &countryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *countryRepository) SaveCountry(ctx context.Context, country models.Country) error {
	query, args, err := buildInsertCountryQuery(r.db.builder, country)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		duplicate, wrapped := r.db.classify(err)
		if duplicate {
			return ErrCountryAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*countryRepository.SaveCountry").Str("country_iso2", country.ISO2).Msg("failed to insert country")
		return wrapped
	}

	return nil
}

func (r *countryRepository) SaveCountries(ctx context.Context, countries ...models.Country) (int, error) {
	if len(countries) == 0 {
		return 0, nil
	}

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		for _, batch := range chunk(countries, insertBatchSize) {
			query, args, err := buildUpsertCountriesQuery(r.db.builder, batch)
			if err != nil {
				return err
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				logger.FromContext(ctx).Err(err).Str("func", "*countryRepository.SaveCountries").Msg("failed to upsert countries")
				_, wrapped := r.db.classify(err)
				return wrapped
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(countries), nil
}

func (r *countryRepository) FindCountry(ctx context.Context, iso2 string) (models.Country, error) {
	query, args, err := buildSelectCountryQuery(r.db.builder, iso2)
	if err != nil {
		return models.Country{}, err
	}

	var country models.Country
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&country.ISO2, &country.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Country{}, ErrCountryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*countryRepository.FindCountry").Str("country_iso2", iso2).Msg("failed to find country")
		_, wrapped := r.db.classify(err)
		return models.Country{}, wrapped
	}

	return country, nil
}

// DeleteAllCountries removes every country. Banks reference countries, so
// callers clear banks first.
func (r *countryRepository) DeleteAllCountries(ctx context.Context) error {
	query, args, err := buildQuery(r.db.builder.Delete(tableCountries))
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*countryRepository.DeleteAllCountries").Msg("failed to delete countries")
		_, wrapped := r.db.classify(err)
		return wrapped
	}

	return nil
}
