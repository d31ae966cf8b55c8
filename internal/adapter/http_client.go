package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-swift-codes/internal/config"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/internal/utils"
	"github.com/MKhiriev/go-swift-codes/models"
	"github.com/go-resty/resty/v2"
)

type httpSwiftCodesClient struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPSwiftCodesClient constructs the REST implementation of
// [SwiftCodesClient]. The address may omit the scheme, http is assumed.
func NewHTTPSwiftCodesClient(cfg config.ClientAdapter, logger *logger.Logger) (SwiftCodesClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	c := &httpSwiftCodesClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	c.SetToken(cfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSwiftCodesClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpSwiftCodesClient) GetBank(ctx context.Context, swiftCode string) (models.BankResponse, error) {
	var bank models.BankResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("swiftCode", swiftCode).
		SetResult(&bank).
		Get("/v1/swift-codes/{swiftCode}")
	if err != nil {
		return models.BankResponse{}, fmt.Errorf("get bank request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BankResponse{}, err
	}

	return bank, nil
}

func (h *httpSwiftCodesClient) GetCountryBanks(ctx context.Context, countryISO2 string) (models.CountryBanksResponse, error) {
	var banks models.CountryBanksResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("countryISO2code", countryISO2).
		SetResult(&banks).
		Get("/v1/swift-codes/country/{countryISO2code}")
	if err != nil {
		return models.CountryBanksResponse{}, fmt.Errorf("get country banks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CountryBanksResponse{}, err
	}

	return banks, nil
}

func (h *httpSwiftCodesClient) AddBank(ctx context.Context, request models.BankRequest) (models.MessageResponse, error) {
	var message models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&message).
		Post("/v1/swift-codes")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("add bank request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	h.logger.Debug().Str("swift_code", request.SwiftCode).Msg("bank added")
	return message, nil
}

func (h *httpSwiftCodesClient) DeleteBank(ctx context.Context, swiftCode string) (models.MessageResponse, error) {
	var message models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("swiftCode", swiftCode).
		SetResult(&message).
		Delete("/v1/swift-codes/{swiftCode}")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("delete bank request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	h.logger.Debug().Str("swift_code", swiftCode).Msg("bank deleted")
	return message, nil
}

func (h *httpSwiftCodesClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/v1/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpSwiftCodesClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}
