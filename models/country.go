// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Country is a dictionary entry keyed by its ISO 3166-1 alpha-2 code.
// A country is final after creation: adding banks never renames it.
type Country struct {
	ISO2 string
	Name string
}
