// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the swift-codes REST API.
//
// The primary abstraction is [SwiftCodesClient], which decouples the CLI
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPSwiftCodesClient]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-swift-codes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SwiftCodesClient talks to a swift-codes server.
type SwiftCodesClient interface {
	// SetToken stores the bearer token attached to the mutating requests.
	SetToken(token string)

	// GetBank fetches a bank by SWIFT code. Headquarters come with their
	// branches.
	GetBank(ctx context.Context, swiftCode string) (models.BankResponse, error)

	// GetCountryBanks lists every bank of a country.
	GetCountryBanks(ctx context.Context, countryISO2 string) (models.CountryBanksResponse, error)

	// AddBank creates a bank and returns the server message.
	AddBank(ctx context.Context, request models.BankRequest) (models.MessageResponse, error)

	// DeleteBank removes a bank and returns the server message.
	DeleteBank(ctx context.Context, swiftCode string) (models.MessageResponse, error)

	// Version returns the server build banner.
	Version(ctx context.Context) (string, error)
}
