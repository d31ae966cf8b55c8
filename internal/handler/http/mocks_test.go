package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-swift-codes/internal/config"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/internal/service"
	"github.com/MKhiriev/go-swift-codes/models"
)

type mockSwiftCodesService struct {
	getBank         func(ctx context.Context, swiftCode string) (models.BankResponse, error)
	getCountryBanks func(ctx context.Context, countryISO2 string) (models.CountryBanksResponse, error)
	addBank         func(ctx context.Context, request models.BankRequest) (models.BankResponse, error)
	deleteBank      func(ctx context.Context, swiftCode string) error
}

func (m *mockSwiftCodesService) GetBank(ctx context.Context, swiftCode string) (models.BankResponse, error) {
	if m.getBank == nil {
		return models.BankResponse{}, nil
	}
	return m.getBank(ctx, swiftCode)
}

func (m *mockSwiftCodesService) GetCountryBanks(ctx context.Context, countryISO2 string) (models.CountryBanksResponse, error) {
	if m.getCountryBanks == nil {
		return models.CountryBanksResponse{SwiftCodes: []models.ReducedBankResponse{}}, nil
	}
	return m.getCountryBanks(ctx, countryISO2)
}

func (m *mockSwiftCodesService) AddBank(ctx context.Context, request models.BankRequest) (models.BankResponse, error) {
	if m.addBank == nil {
		return models.BankResponse{SwiftCode: request.SwiftCode}, nil
	}
	return m.addBank(ctx, request)
}

func (m *mockSwiftCodesService) DeleteBank(ctx context.Context, swiftCode string) error {
	if m.deleteBank == nil {
		return nil
	}
	return m.deleteBank(ctx, swiftCode)
}

type mockAuthService struct {
	enabled    bool
	parseToken func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Enabled() bool { return m.enabled }

func (m *mockAuthService) CreateToken(_ context.Context, subject string) (models.Token, error) {
	return models.Token{SignedString: "token-for-" + subject}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseToken == nil {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.parseToken(ctx, tokenString)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Check(_ context.Context) error {
	return m.err
}

type healthFunc func(ctx context.Context) error

func (f healthFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// newTestServices fills every service with a permissive mock.
func newTestServices() *service.Services {
	return &service.Services{
		SwiftCodesService: &mockSwiftCodesService{},
		AuthService:       &mockAuthService{},
		AppInfoService:    &mockAppInfoService{version: "test-version"},
		HealthService:     &mockHealthService{},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, config.Server{}, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
