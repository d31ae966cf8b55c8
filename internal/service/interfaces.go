// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the SWIFT codes directory.
//
// SwiftCodesService implements the REST operations on top of the store
// repositories. It is decorated by a validation wrapper that rejects
// malformed input before any repository is touched. ImportService loads
// the directory from a CSV file, AuthService issues and verifies operator
// tokens, and HealthService reports storage reachability.
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-swift-codes/models"
)

type SwiftCodesService interface {
	GetBank(ctx context.Context, swiftCode string) (models.BankResponse, error)
	GetCountryBanks(ctx context.Context, countryISO2 string) (models.CountryBanksResponse, error)
	AddBank(ctx context.Context, request models.BankRequest) (models.BankResponse, error)
	DeleteBank(ctx context.Context, swiftCode string) error
}

type ImportService interface {
	Import(ctx context.Context, r io.Reader, opts models.ImportOptions) (models.ImportSummary, error)
}

type AuthService interface {
	// Enabled reports whether a sign key is configured. Mutating routes are
	// only guarded when it is.
	Enabled() bool
	CreateToken(ctx context.Context, subject string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type HealthService interface {
	Check(ctx context.Context) error
}

// SwiftCodesServiceWrapper defines middleware composition for SwiftCodesService.
// Implementations wrap an existing SwiftCodesService to add behavior such as
// validation.
type SwiftCodesServiceWrapper interface {
	Wrap(SwiftCodesService) SwiftCodesService // returns a decorated SwiftCodesService applying additional behavior
}

// Pinger is anything that can report whether its backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
