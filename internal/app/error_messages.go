// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// swift-codes server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API and
// in swiftctl, which matches them in its error output.
package app

const (
	// MsgOK is the body message of successful POST and DELETE requests.
	MsgOK = "ok"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgValidationErrorPrefix precedes the violation list of a rejected
	// request: "Validation Error: swiftCode: Invalid SWIFT code pattern".
	MsgValidationErrorPrefix = "Validation Error: "

	// MsgBankNotFound is returned when no bank has the requested SWIFT code.
	MsgBankNotFound = "Bank not found"

	// MsgCountryNotFound is returned when the requested ISO2 code is unknown.
	MsgCountryNotFound = "Country not found"

	// MsgBankAlreadyExists is returned when a POST repeats an existing code.
	MsgBankAlreadyExists = "Bank already exists"

	// MsgHeadBankNotFound is returned when a branch is added before its
	// headquarter.
	MsgHeadBankNotFound = "Headquarter bank does not exists"

	// MsgChildBranchesFound is returned when deleting a headquarter that
	// still has branches.
	MsgChildBranchesFound = "Bank has child branches"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgServiceUnavailable is returned when the storage backend cannot be
	// reached.
	MsgServiceUnavailable = "service unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// Health statuses of GET /v1/health.
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)
