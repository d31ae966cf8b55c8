package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-swift-codes/models"
)

const (
	tableBanks     = "banks"
	tableCountries = "countries"

	// rows per multi-row INSERT, kept below SQLite's bound variable limit
	insertBatchSize = 100
)

var bankColumns = []string{
	"swift_code",
	"bank_name",
	"address",
	"is_headquarter",
	"country_iso2",
	"headquarter_swift_code",
}

var countryColumns = []string{"country_iso2", "country_name"}

const (
	upsertBankSuffix = `ON CONFLICT (swift_code) DO UPDATE SET
		bank_name = excluded.bank_name,
		address = excluded.address,
		is_headquarter = excluded.is_headquarter,
		country_iso2 = excluded.country_iso2,
		headquarter_swift_code = excluded.headquarter_swift_code`

	upsertCountrySuffix = `ON CONFLICT (country_iso2) DO UPDATE SET
		country_name = excluded.country_name`
)

func buildQuery(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertBankQuery(builder sq.StatementBuilderType, bank models.Bank) (string, []any, error) {
	return buildQuery(builder.Insert(tableBanks).
		Columns(bankColumns...).
		Values(bankValues(bank)...))
}

func buildUpsertBanksQuery(builder sq.StatementBuilderType, banks []models.Bank) (string, []any, error) {
	insert := builder.Insert(tableBanks).Columns(bankColumns...)
	for _, bank := range banks {
		insert = insert.Values(bankValues(bank)...)
	}

	return buildQuery(insert.Suffix(upsertBankSuffix))
}

func buildSelectBankQuery(builder sq.StatementBuilderType, swiftCode string) (string, []any, error) {
	return buildQuery(builder.Select(bankColumns...).
		From(tableBanks).
		Where(sq.Eq{"swift_code": swiftCode}))
}

func buildSelectBranchesQuery(builder sq.StatementBuilderType, headquarterSwiftCode string) (string, []any, error) {
	return buildQuery(builder.Select(bankColumns...).
		From(tableBanks).
		Where(sq.Eq{"headquarter_swift_code": headquarterSwiftCode}).
		OrderBy("swift_code"))
}

func buildSelectBanksByCountryQuery(builder sq.StatementBuilderType, countryISO2 string) (string, []any, error) {
	return buildQuery(builder.Select(bankColumns...).
		From(tableBanks).
		Where(sq.Eq{"country_iso2": countryISO2}).
		OrderBy("swift_code"))
}

func buildCountBranchesQuery(builder sq.StatementBuilderType, headquarterSwiftCode string) (string, []any, error) {
	return buildQuery(builder.Select("COUNT(*)").
		From(tableBanks).
		Where(sq.Eq{"headquarter_swift_code": headquarterSwiftCode}))
}

func buildDeleteBankQuery(builder sq.StatementBuilderType, swiftCode string) (string, []any, error) {
	return buildQuery(builder.Delete(tableBanks).Where(sq.Eq{"swift_code": swiftCode}))
}

func buildInsertCountryQuery(builder sq.StatementBuilderType, country models.Country) (string, []any, error) {
	return buildQuery(builder.Insert(tableCountries).
		Columns(countryColumns...).
		Values(country.ISO2, country.Name))
}

func buildUpsertCountriesQuery(builder sq.StatementBuilderType, countries []models.Country) (string, []any, error) {
	insert := builder.Insert(tableCountries).Columns(countryColumns...)
	for _, country := range countries {
		insert = insert.Values(country.ISO2, country.Name)
	}

	return buildQuery(insert.Suffix(upsertCountrySuffix))
}

func buildSelectCountryQuery(builder sq.StatementBuilderType, iso2 string) (string, []any, error) {
	return buildQuery(builder.Select(countryColumns...).
		From(tableCountries).
		Where(sq.Eq{"country_iso2": iso2}))
}

func bankValues(bank models.Bank) []any {
	return []any{
		bank.SwiftCode,
		bank.BankName,
		bank.Address,
		bank.IsHeadquarter,
		bank.CountryISO2,
		bank.HeadquarterSwiftCode,
	}
}

// chunk splits items into consecutive slices of at most size elements.
func chunk[T any](items []T, size int) [][]T {
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for size < len(items) {
		items, chunks = items[size:], append(chunks, items[:size])
	}
	if len(items) > 0 {
		chunks = append(chunks, items)
	}

	return chunks
}
