package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/internal/store"
	"github.com/MKhiriev/go-swift-codes/models"
)

type swiftCodesService struct {
	bankRepository    store.BankRepository
	countryRepository store.CountryRepository

	logger *logger.Logger
}

func NewSwiftCodesService(bankRepository store.BankRepository, countryRepository store.CountryRepository, logger *logger.Logger) SwiftCodesService {
	return &swiftCodesService{
		bankRepository:    bankRepository,
		countryRepository: countryRepository,
		logger:            logger,
	}
}

// GetBank returns the bank with its country name. Headquarters carry their
// branches. A bank whose country is missing is returned with an empty
// country name.
func (s *swiftCodesService) GetBank(ctx context.Context, swiftCode string) (models.BankResponse, error) {
	log := logger.FromContext(ctx)

	bank, err := s.bankRepository.FindBank(ctx, swiftCode)
	if err != nil {
		return models.BankResponse{}, fmt.Errorf("find bank %s: %w", swiftCode, err)
	}

	countryName, err := s.countryName(ctx, bank.CountryISO2)
	if err != nil {
		return models.BankResponse{}, err
	}

	var branches []models.Bank
	if bank.IsHeadquarter {
		branches, err = s.bankRepository.FindBranches(ctx, bank.SwiftCode)
		if err != nil {
			return models.BankResponse{}, fmt.Errorf("find branches of %s: %w", bank.SwiftCode, err)
		}
	}

	log.Debug().Str("func", "*swiftCodesService.GetBank").
		Str("swift_code", swiftCode).
		Int("branches", len(branches)).
		Msg("bank found")

	return models.NewBankResponse(bank, countryName, branches), nil
}

func (s *swiftCodesService) countryName(ctx context.Context, iso2 string) (string, error) {
	country, err := s.countryRepository.FindCountry(ctx, iso2)
	switch {
	case err == nil:
		return country.Name, nil
	case errors.Is(err, store.ErrCountryNotFound):
		logger.FromContext(ctx).Warn().Str("func", "*swiftCodesService.countryName").
			Str("country_iso2", iso2).
			Msg("bank references a missing country")
		return "", nil
	default:
		return "", fmt.Errorf("find country %s: %w", iso2, err)
	}
}

// GetCountryBanks lists every bank of a country, headquarters and branches
// alike. The list is empty, not nil, when the country has no banks.
func (s *swiftCodesService) GetCountryBanks(ctx context.Context, countryISO2 string) (models.CountryBanksResponse, error) {
	country, err := s.countryRepository.FindCountry(ctx, countryISO2)
	if err != nil {
		return models.CountryBanksResponse{}, fmt.Errorf("find country %s: %w", countryISO2, err)
	}

	banks, err := s.bankRepository.FindBanksByCountry(ctx, countryISO2)
	if err != nil {
		return models.CountryBanksResponse{}, fmt.Errorf("find banks of %s: %w", countryISO2, err)
	}

	response := models.CountryBanksResponse{
		CountryISO2: country.ISO2,
		CountryName: country.Name,
		SwiftCodes:  make([]models.ReducedBankResponse, 0, len(banks)),
	}
	for _, bank := range banks {
		response.SwiftCodes = append(response.SwiftCodes, models.NewReducedBankResponse(bank))
	}

	return response, nil
}

// AddBank stores a new bank. A branch needs its headquarter to exist. The
// country is created on first use and keeps its original name afterwards.
func (s *swiftCodesService) AddBank(ctx context.Context, request models.BankRequest) (models.BankResponse, error) {
	log := logger.FromContext(ctx)
	bank := request.ToBank()

	_, err := s.bankRepository.FindBank(ctx, bank.SwiftCode)
	switch {
	case err == nil:
		return models.BankResponse{}, store.ErrBankAlreadyExists
	case !errors.Is(err, store.ErrBankNotFound):
		return models.BankResponse{}, fmt.Errorf("find bank %s: %w", bank.SwiftCode, err)
	}

	// checked before the country is created so a rejected branch leaves nothing behind
	if !bank.IsHeadquarter {
		if _, err = s.bankRepository.FindBank(ctx, bank.HeadquarterSwiftCode); err != nil {
			if errors.Is(err, store.ErrBankNotFound) {
				return models.BankResponse{}, fmt.Errorf("%w: %s", ErrHeadBankNotFound, bank.HeadquarterSwiftCode)
			}
			return models.BankResponse{}, fmt.Errorf("find headquarter %s: %w", bank.HeadquarterSwiftCode, err)
		}
	}

	country, err := s.ensureCountry(ctx, request.ToCountry())
	if err != nil {
		return models.BankResponse{}, err
	}

	if err = s.bankRepository.SaveBank(ctx, bank); err != nil {
		return models.BankResponse{}, fmt.Errorf("save bank %s: %w", bank.SwiftCode, err)
	}

	log.Info().Str("func", "*swiftCodesService.AddBank").
		Str("swift_code", bank.SwiftCode).
		Bool("is_headquarter", bank.IsHeadquarter).
		Msg("bank added")

	return models.NewBankResponse(bank, country.Name, nil), nil
}

func (s *swiftCodesService) ensureCountry(ctx context.Context, country models.Country) (models.Country, error) {
	existing, err := s.countryRepository.FindCountry(ctx, country.ISO2)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrCountryNotFound) {
		return models.Country{}, fmt.Errorf("find country %s: %w", country.ISO2, err)
	}

	err = s.countryRepository.SaveCountry(ctx, country)
	if err != nil && !errors.Is(err, store.ErrCountryAlreadyExists) {
		return models.Country{}, fmt.Errorf("save country %s: %w", country.ISO2, err)
	}

	return country, nil
}

// DeleteBank removes a bank. Headquarters with branches cannot be deleted.
func (s *swiftCodesService) DeleteBank(ctx context.Context, swiftCode string) error {
	bank, err := s.bankRepository.FindBank(ctx, swiftCode)
	if err != nil {
		return fmt.Errorf("find bank %s: %w", swiftCode, err)
	}

	if bank.IsHeadquarter {
		branches, err := s.bankRepository.CountBranches(ctx, swiftCode)
		if err != nil {
			return fmt.Errorf("count branches of %s: %w", swiftCode, err)
		}
		if branches > 0 {
			return fmt.Errorf("%w: %d", ErrChildBranchesFound, branches)
		}
	}

	if err = s.bankRepository.DeleteBank(ctx, swiftCode); err != nil {
		return fmt.Errorf("delete bank %s: %w", swiftCode, err)
	}

	logger.FromContext(ctx).Info().Str("func", "*swiftCodesService.DeleteBank").
		Str("swift_code", swiftCode).
		Msg("bank deleted")

	return nil
}
