// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// The swift codes rules (SWIFT code format, country code format, uppercase
// names and the headquarter flag matching the "XXX" suffix) are expressed as
// go-playground/validator tags on the request models and registered by
// NewBankValidator. Failures are reported as a *ValidationError listing every
// violated field by its JSON name.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks and
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
