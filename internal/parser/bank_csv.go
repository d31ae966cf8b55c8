// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package parser reads SWIFT codes spreadsheets exported as CSV.
//
// The expected header contains at least the columns
//
//	SWIFT CODE, NAME, ADDRESS, COUNTRY NAME, COUNTRY ISO2 CODE
//
// in any order. Other columns such as CODE TYPE, TOWN NAME and TIME ZONE are
// ignored.
package parser

import (
	"cmp"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/internal/validators"
	"github.com/MKhiriev/go-swift-codes/models"
)

const (
	ColumnSwiftCode   = "SWIFT CODE"
	ColumnName        = "NAME"
	ColumnAddress     = "ADDRESS"
	ColumnCountryName = "COUNTRY NAME"
	ColumnCountryISO2 = "COUNTRY ISO2 CODE"
)

var requiredColumns = []string{ColumnSwiftCode, ColumnName, ColumnAddress, ColumnCountryName, ColumnCountryISO2}

// ParseResult holds the parsed directory. Countries keep the order in which
// they were first seen; headquarters and branches are sorted by SWIFT code.
type ParseResult struct {
	Countries    []models.Country
	Headquarters []models.Bank
	Branches     []models.Bank
	SkippedRows  int
}

// Banks returns headquarters followed by branches.
func (r ParseResult) Banks() []models.Bank {
	return slices.Concat(r.Headquarters, r.Branches)
}

// BankCSVParser turns CSV rows into banks and countries.
type BankCSVParser struct {
	validator validators.Validator
	logger    *logger.Logger
}

func NewBankCSVParser(validator validators.Validator, log *logger.Logger) *BankCSVParser {
	return &BankCSVParser{validator: validator, logger: log}
}

// Parse reads the whole input. Rows with an invalid SWIFT or country code
// and repeated SWIFT codes are skipped and counted; the first occurrence of a
// code wins. The first name seen for a country is kept.
func (p *BankCSVParser) Parse(ctx context.Context, r io.Reader) (ParseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return ParseResult{}, ErrEmptyInput
	}
	if err != nil {
		return ParseResult{}, fmt.Errorf("error reading csv header: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return ParseResult{}, err
	}

	var result ParseResult
	seenBanks := make(map[string]struct{})
	seenCountries := make(map[string]struct{})

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ParseResult{}, fmt.Errorf("error reading csv line %d: %w", line, err)
		}

		row := columns.row(record)
		if err = p.validateRow(ctx, row); err != nil {
			p.logger.Warn().Err(err).Int("line", line).Str("swift_code", row.swiftCode).Msg("skipping invalid row")
			result.SkippedRows++
			continue
		}

		if _, ok := seenBanks[row.swiftCode]; ok {
			p.logger.Warn().Int("line", line).Str("swift_code", row.swiftCode).Msg("skipping duplicate swift code")
			result.SkippedRows++
			continue
		}
		seenBanks[row.swiftCode] = struct{}{}

		if _, ok := seenCountries[row.countryISO2]; !ok {
			seenCountries[row.countryISO2] = struct{}{}
			result.Countries = append(result.Countries, models.Country{ISO2: row.countryISO2, Name: row.countryName})
		}

		bank := models.NewBank(row.swiftCode, row.name, row.address, row.countryISO2)
		if bank.IsHeadquarter {
			result.Headquarters = append(result.Headquarters, bank)
		} else {
			result.Branches = append(result.Branches, bank)
		}
	}

	bySwiftCode := func(a, b models.Bank) int { return cmp.Compare(a.SwiftCode, b.SwiftCode) }
	slices.SortFunc(result.Headquarters, bySwiftCode)
	slices.SortFunc(result.Branches, bySwiftCode)

	p.logger.Info().
		Int("countries", len(result.Countries)).
		Int("headquarters", len(result.Headquarters)).
		Int("branches", len(result.Branches)).
		Int("skipped", result.SkippedRows).
		Msg("parsed swift codes csv")

	return result, nil
}

func (p *BankCSVParser) validateRow(ctx context.Context, row csvRow) error {
	if err := p.validator.Validate(ctx, models.SwiftCodeQuery{SwiftCode: row.swiftCode}); err != nil {
		return err
	}

	return p.validator.Validate(ctx, models.CountryQuery{CountryISO2: row.countryISO2})
}

type csvRow struct {
	swiftCode   string
	name        string
	address     string
	countryName string
	countryISO2 string
}

// columnIndex maps required column names onto record positions.
type columnIndex map[string]int

func mapColumns(header []string) (columnIndex, error) {
	columns := make(columnIndex, len(requiredColumns))
	for i, name := range header {
		name = strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return columns, nil
}

func (c columnIndex) row(record []string) csvRow {
	return csvRow{
		swiftCode:   c.value(record, ColumnSwiftCode),
		name:        c.value(record, ColumnName),
		address:     c.value(record, ColumnAddress),
		countryName: c.value(record, ColumnCountryName),
		countryISO2: c.value(record, ColumnCountryISO2),
	}
}

func (c columnIndex) value(record []string, column string) string {
	i := c[column]
	if i >= len(record) {
		return ""
	}

	return strings.ToUpper(strings.TrimSpace(record[i]))
}
