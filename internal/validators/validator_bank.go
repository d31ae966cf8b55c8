// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-swift-codes/models"
	"github.com/go-playground/validator/v10"
)

// Tags registered on top of the go-playground baked-in validations.
const (
	TagSwiftCode        = "swiftcode"
	TagSwiftPattern     = "swiftpattern"
	TagCountryCode      = "countrycode"
	TagHeadquarterMatch = "headquartermatch"
)

// Messages reported for failed rules.
const (
	MsgSwiftCodeLength   = "Invalid code length. SWIFT code must be 11 characters long"
	MsgSwiftCodePattern  = "Invalid SWIFT code pattern"
	MsgCountryCodeLength = "Invalid code length. Country code must be 2 characters long"
	MsgUppercase         = "must be uppercase"
	MsgRequired          = "must not be empty"
	MsgHeadquarterMatch  = "SWIFT code does not match headquarter status"
)

var swiftCodePattern = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}[A-Z0-9]{3}$`)

// BankValidator validates SWIFT codes directory inputs: [models.BankRequest],
// [models.SwiftCodeQuery] and [models.CountryQuery], by value or by pointer.
//
// Optional field names restrict validation to the given Go struct fields
// (for example "SwiftCode"). Struct-level rules still apply.
type BankValidator struct {
	validate *validator.Validate
}

// NewBankValidator constructs a BankValidator with the swift codes rules
// registered and returns it as the Validator interface.
func NewBankValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation(TagSwiftPattern, isSwiftCodePattern)
	v.RegisterAlias(TagSwiftCode, "len=11,"+TagSwiftPattern)
	v.RegisterAlias(TagCountryCode, "len=2,uppercase")
	v.RegisterStructValidation(headquarterMatch, models.BankRequest{})

	return &BankValidator{validate: v}
}

func (v *BankValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BankRequest, models.SwiftCodeQuery, models.CountryQuery:
		return v.validateStruct(ctx, value, fields...)
	case *models.BankRequest:
		return v.validateStruct(ctx, *value, fields...)
	case *models.SwiftCodeQuery:
		return v.validateStruct(ctx, *value, fields...)
	case *models.CountryQuery:
		return v.validateStruct(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *BankValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation could not run: %w", err)
	}

	result := &ValidationError{Violations: make([]FieldViolation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		result.Violations = append(result.Violations, FieldViolation{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})

		// the swiftcode alias stops at len; report the pattern as well
		if fe.Tag() == TagSwiftCode && fe.ActualTag() == "len" && !swiftCodePattern.MatchString(fmt.Sprint(fe.Value())) {
			result.Violations = append(result.Violations, FieldViolation{
				Field:   fe.Field(),
				Message: MsgSwiftCodePattern,
			})
		}
	}

	return result
}

func messageFor(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "len":
		switch fe.Tag() {
		case TagSwiftCode:
			return MsgSwiftCodeLength
		case TagCountryCode:
			return MsgCountryCodeLength
		}
		return fmt.Sprintf("must be %s characters long", fe.Param())
	case TagSwiftPattern:
		return MsgSwiftCodePattern
	case "uppercase":
		return MsgUppercase
	case "required":
		return MsgRequired
	case TagHeadquarterMatch:
		return MsgHeadquarterMatch
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func isSwiftCodePattern(fl validator.FieldLevel) bool {
	return swiftCodePattern.MatchString(fl.Field().String())
}

// headquarterMatch requires isHeadquarter to agree with the "XXX" branch
// suffix. Codes of the wrong length are left to the swiftcode rule.
func headquarterMatch(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.BankRequest)
	if len(req.SwiftCode) != models.SwiftCodeLength {
		return
	}

	if req.IsHeadquarter != models.IsHeadquarterCode(req.SwiftCode) {
		sl.ReportError(req.SwiftCode, "swiftCode", "SwiftCode", TagHeadquarterMatch, "")
	}
}
