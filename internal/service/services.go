package service

import (
	"github.com/MKhiriev/go-swift-codes/internal/config"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/internal/parser"
	"github.com/MKhiriev/go-swift-codes/internal/store"
	"github.com/MKhiriev/go-swift-codes/internal/validators"
)

type Services struct {
	SwiftCodesService SwiftCodesService
	ImportService     ImportService
	AuthService       AuthService
	AppInfoService    AppInfoService
	HealthService     HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewBankValidator()
	swiftCodesService := NewSwiftCodesValidationService(validator).
		Wrap(NewSwiftCodesService(storages.BankRepository, storages.CountryRepository, logger))

	return &Services{
		SwiftCodesService: swiftCodesService,
		ImportService: NewImportService(parser.NewBankCSVParser(validator, logger),
			storages.BankRepository, storages.CountryRepository, logger),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages, logger),
	}, nil
}
