// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the SWIFT codes directory.
//
// Two repositories make up the storage layer:
//   - BankRepository keeps headquarters and branches keyed by SWIFT code.
//     Branches of a headquarter are found through HeadquarterSwiftCode.
//   - CountryRepository keeps country names keyed by ISO2 code.
//
// Both are implemented for MongoDB (the default) and for PostgreSQL and
// SQLite through database/sql. NewStorages picks the implementation from
// config.Storage.Driver.
package store

import (
	"context"

	"github.com/MKhiriev/go-swift-codes/models"
)

// BankRepository stores banks. Lists are ordered by SWIFT code.
type BankRepository interface {
	// SaveBank inserts a bank. Returns ErrBankAlreadyExists on duplicate codes.
	SaveBank(ctx context.Context, bank models.Bank) error
	// SaveBanks inserts or replaces banks in bulk and returns how many were written.
	SaveBanks(ctx context.Context, banks ...models.Bank) (int, error)
	// FindBank returns ErrBankNotFound when the code is unknown.
	FindBank(ctx context.Context, swiftCode string) (models.Bank, error)
	FindBranches(ctx context.Context, headquarterSwiftCode string) ([]models.Bank, error)
	FindBanksByCountry(ctx context.Context, countryISO2 string) ([]models.Bank, error)
	CountBranches(ctx context.Context, headquarterSwiftCode string) (int64, error)
	// DeleteBank returns ErrBankNotFound when nothing was deleted.
	DeleteBank(ctx context.Context, swiftCode string) error
	DeleteAllBanks(ctx context.Context) error
}

// CountryRepository stores countries.
type CountryRepository interface {
	// SaveCountry returns ErrCountryAlreadyExists on duplicate codes.
	SaveCountry(ctx context.Context, country models.Country) error
	SaveCountries(ctx context.Context, countries ...models.Country) (int, error)
	// FindCountry returns ErrCountryNotFound when the code is unknown.
	FindCountry(ctx context.Context, iso2 string) (models.Country, error)
	DeleteAllCountries(ctx context.Context) error
}

// ErrorClassificator maps driver errors onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// database is the connection behind a set of repositories.
type database interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
