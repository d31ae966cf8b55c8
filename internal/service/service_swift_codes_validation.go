package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-swift-codes/internal/validators"
	"github.com/MKhiriev/go-swift-codes/models"
)

// SwiftCodesValidationService rejects malformed input before it reaches the
// wrapped SwiftCodesService.
type SwiftCodesValidationService struct {
	inner     SwiftCodesService
	validator validators.Validator
}

func NewSwiftCodesValidationService(validator validators.Validator) SwiftCodesServiceWrapper {
	return &SwiftCodesValidationService{
		validator: validator,
	}
}

func (v *SwiftCodesValidationService) GetBank(ctx context.Context, swiftCode string) (models.BankResponse, error) {
	if err := v.validate(ctx, models.SwiftCodeQuery{SwiftCode: swiftCode}); err != nil {
		return models.BankResponse{}, err
	}

	return v.inner.GetBank(ctx, swiftCode)
}

func (v *SwiftCodesValidationService) GetCountryBanks(ctx context.Context, countryISO2 string) (models.CountryBanksResponse, error) {
	if err := v.validate(ctx, models.CountryQuery{CountryISO2: countryISO2}); err != nil {
		return models.CountryBanksResponse{}, err
	}

	return v.inner.GetCountryBanks(ctx, countryISO2)
}

func (v *SwiftCodesValidationService) AddBank(ctx context.Context, request models.BankRequest) (models.BankResponse, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.BankResponse{}, err
	}

	return v.inner.AddBank(ctx, request)
}

func (v *SwiftCodesValidationService) DeleteBank(ctx context.Context, swiftCode string) error {
	if err := v.validate(ctx, models.SwiftCodeQuery{SwiftCode: swiftCode}); err != nil {
		return err
	}

	return v.inner.DeleteBank(ctx, swiftCode)
}

func (v *SwiftCodesValidationService) Wrap(wrapper SwiftCodesService) SwiftCodesService {
	v.inner = wrapper
	return v
}

func (v *SwiftCodesValidationService) validate(ctx context.Context, obj any) error {
	if err := v.validator.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
