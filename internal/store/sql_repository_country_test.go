package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/models"
)

func newTestCountryRepo(t *testing.T) (*countryRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &countryRepository{db: db, logger: logger.Nop()}, mock
}

func TestCountryRepository_SaveCountry(t *testing.T) {
	repo, mock := newTestCountryRepo(t)

	mock.ExpectExec("INSERT INTO countries").
		WithArgs("PL", "POLAND").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SaveCountry(context.Background(), models.Country{ISO2: "PL", Name: "POLAND"}))
}

func TestCountryRepository_SaveCountry_Duplicate(t *testing.T) {
	repo, mock := newTestCountryRepo(t)

	mock.ExpectExec("INSERT INTO countries").WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.SaveCountry(context.Background(), models.Country{ISO2: "PL", Name: "POLAND"})
	assert.ErrorIs(t, err, ErrCountryAlreadyExists)
}

func TestCountryRepository_SaveCountries(t *testing.T) {
	repo, mock := newTestCountryRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO countries .* ON CONFLICT \\(country_iso2\\)").
		WithArgs("PL", "POLAND", "MT", "MALTA").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	n, err := repo.SaveCountries(context.Background(),
		models.Country{ISO2: "PL", Name: "POLAND"},
		models.Country{ISO2: "MT", Name: "MALTA"},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCountryRepository_SaveCountries_CommitError(t *testing.T) {
	repo, mock := newTestCountryRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO countries").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	_, err := repo.SaveCountries(context.Background(), models.Country{ISO2: "PL", Name: "POLAND"})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestCountryRepository_FindCountry(t *testing.T) {
	repo, mock := newTestCountryRepo(t)

	mock.ExpectQuery("SELECT country_iso2, country_name FROM countries WHERE country_iso2 = \\$1").
		WithArgs("PL").
		WillReturnRows(sqlmock.NewRows(countryColumns).AddRow("PL", "POLAND"))

	country, err := repo.FindCountry(context.Background(), "PL")
	require.NoError(t, err)
	assert.Equal(t, models.Country{ISO2: "PL", Name: "POLAND"}, country)
}

func TestCountryRepository_FindCountry_NotFound(t *testing.T) {
	repo, mock := newTestCountryRepo(t)

	mock.ExpectQuery("SELECT .* FROM countries").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindCountry(context.Background(), "XX")
	assert.ErrorIs(t, err, ErrCountryNotFound)
}

func TestCountryRepository_DeleteAllCountries(t *testing.T) {
	repo, mock := newTestCountryRepo(t)

	mock.ExpectExec("DELETE FROM countries").WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, repo.DeleteAllCountries(context.Background()))
}
