// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const (
	// SwiftCodeLength is the length of a full (branch-qualified) SWIFT/BIC code.
	SwiftCodeLength = 11

	// HeadquarterSuffix is the branch code carried by headquarter SWIFT codes.
	HeadquarterSuffix = "XXX"

	// institutionPrefixLength covers bank code, country code and location code.
	institutionPrefixLength = 8
)

// Bank is a single SWIFT directory entry. It is either a headquarter
// (code ends with [HeadquarterSuffix]) or a branch of one.
//
// Branches are linked to their headquarter by HeadquarterSwiftCode; the
// headquarter itself keeps no list of branches, the store derives it by query.
type Bank struct {
	SwiftCode            string
	BankName             string
	Address              string
	IsHeadquarter        bool
	CountryISO2          string
	HeadquarterSwiftCode string
}

// IsHeadquarterCode reports whether code is a headquarter SWIFT code.
func IsHeadquarterCode(code string) bool {
	return len(code) == SwiftCodeLength && strings.HasSuffix(code, HeadquarterSuffix)
}

// HeadquarterCodeFor returns the headquarter SWIFT code that owns code.
// For codes shorter than the institution prefix it returns "".
func HeadquarterCodeFor(code string) string {
	if len(code) < institutionPrefixLength {
		return ""
	}
	return code[:institutionPrefixLength] + HeadquarterSuffix
}

// NewBank builds a Bank and fills the derived headquarter fields from the code.
func NewBank(swiftCode, bankName, address, countryISO2 string) Bank {
	bank := Bank{
		SwiftCode:     swiftCode,
		BankName:      bankName,
		Address:       address,
		IsHeadquarter: IsHeadquarterCode(swiftCode),
		CountryISO2:   countryISO2,
	}
	if !bank.IsHeadquarter {
		bank.HeadquarterSwiftCode = HeadquarterCodeFor(swiftCode)
	}

	return bank
}
