package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/internal/parser"
	"github.com/MKhiriev/go-swift-codes/internal/store"
	"github.com/MKhiriev/go-swift-codes/models"
)

// BankParser reads a SWIFT codes file.
type BankParser interface {
	Parse(ctx context.Context, r io.Reader) (parser.ParseResult, error)
}

type importService struct {
	parser BankParser

	bankRepository    store.BankRepository
	countryRepository store.CountryRepository

	logger *logger.Logger
}

func NewImportService(parser BankParser, bankRepository store.BankRepository, countryRepository store.CountryRepository, logger *logger.Logger) ImportService {
	return &importService{
		parser:            parser,
		bankRepository:    bankRepository,
		countryRepository: countryRepository,
		logger:            logger,
	}
}

// Import loads a CSV file into the store. Countries are written before banks
// and headquarters before branches. Branches whose headquarter is neither in
// the file nor in the store are imported anyway and reported as orphans.
func (s *importService) Import(ctx context.Context, r io.Reader, opts models.ImportOptions) (models.ImportSummary, error) {
	result, err := s.parser.Parse(ctx, r)
	if err != nil {
		return models.ImportSummary{}, fmt.Errorf("parse swift codes: %w", err)
	}

	if opts.DropExisting {
		if err = s.dropExisting(ctx); err != nil {
			return models.ImportSummary{}, err
		}
	}

	orphans, err := s.countOrphans(ctx, result, opts.DropExisting)
	if err != nil {
		return models.ImportSummary{}, err
	}

	summary := models.ImportSummary{
		OrphanBranches: orphans,
		SkippedRows:    result.SkippedRows,
	}

	if summary.Countries, err = s.countryRepository.SaveCountries(ctx, result.Countries...); err != nil {
		return models.ImportSummary{}, fmt.Errorf("save countries: %w", err)
	}
	if summary.Headquarters, err = s.bankRepository.SaveBanks(ctx, result.Headquarters...); err != nil {
		return models.ImportSummary{}, fmt.Errorf("save headquarters: %w", err)
	}
	if summary.Branches, err = s.bankRepository.SaveBanks(ctx, result.Branches...); err != nil {
		return models.ImportSummary{}, fmt.Errorf("save branches: %w", err)
	}

	s.logger.Info().Str("func", "*importService.Import").
		Any("summary", summary).
		Bool("drop_existing", opts.DropExisting).
		Msg("swift codes imported")

	return summary, nil
}

func (s *importService) dropExisting(ctx context.Context) error {
	// banks reference countries in the SQL schema
	if err := s.bankRepository.DeleteAllBanks(ctx); err != nil {
		return fmt.Errorf("drop banks: %w", err)
	}
	if err := s.countryRepository.DeleteAllCountries(ctx); err != nil {
		return fmt.Errorf("drop countries: %w", err)
	}

	s.logger.Warn().Str("func", "*importService.dropExisting").Msg("existing banks and countries dropped")
	return nil
}

func (s *importService) countOrphans(ctx context.Context, result parser.ParseResult, storeIsEmpty bool) (int, error) {
	known := make(map[string]bool, len(result.Headquarters))
	for _, hq := range result.Headquarters {
		known[hq.SwiftCode] = true
	}

	orphans := 0
	for _, branch := range result.Branches {
		found, checked := known[branch.HeadquarterSwiftCode]
		if !checked {
			if !storeIsEmpty {
				_, err := s.bankRepository.FindBank(ctx, branch.HeadquarterSwiftCode)
				switch {
				case err == nil:
					found = true
				case !errors.Is(err, store.ErrBankNotFound):
					return 0, fmt.Errorf("find headquarter %s: %w", branch.HeadquarterSwiftCode, err)
				}
			}
			known[branch.HeadquarterSwiftCode] = found
		}

		if !found {
			orphans++
			s.logger.Warn().Str("func", "*importService.countOrphans").
				Str("swift_code", branch.SwiftCode).
				Str("headquarter_swift_code", branch.HeadquarterSwiftCode).
				Msg("branch without headquarter")
		}
	}

	return orphans, nil
}
