package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-swift-codes/internal/config"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) SwiftCodesClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPSwiftCodesClient(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
		Token:          token,
	}, logger.Nop())
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host only", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", raw: "https://swift.example/", want: "https://swift.example"},
		{name: "surrounding spaces", raw: "  http://127.0.0.1:8080  ", want: "http://127.0.0.1:8080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPSwiftCodesClient_EmptyAddress(t *testing.T) {
	_, err := NewHTTPSwiftCodesClient(config.ClientAdapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestGetBank(t *testing.T) {
	want := models.BankResponse{
		SwiftCode:     "AAISALTRXXX",
		BankName:      "UNITED BANK OF ALBANIA SH.A",
		Address:       "HYRJA 3 RR. DRITAN HOXHA ND. 11 TIRANA, TIRANA, 1023",
		IsHeadquarter: true,
		CountryISO2:   "AL",
		CountryName:   "ALBANIA",
		Branches:      []models.ReducedBankResponse{{SwiftCode: "AAISALTR123", CountryISO2: "AL"}},
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/swift-codes/AAISALTRXXX", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "read routes carry no token")
		writeJSON(w, http.StatusOK, want)
	}, "secret")

	got, err := client.GetBank(context.Background(), "AAISALTRXXX")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetCountryBanks(t *testing.T) {
	want := models.CountryBanksResponse{
		CountryISO2: "AL",
		CountryName: "ALBANIA",
		SwiftCodes:  []models.ReducedBankResponse{{SwiftCode: "AAISALTRXXX", IsHeadquarter: true, CountryISO2: "AL"}},
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/swift-codes/country/AL", r.URL.Path)
		writeJSON(w, http.StatusOK, want)
	}, "")

	got, err := client.GetCountryBanks(context.Background(), "AL")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAddBank(t *testing.T) {
	request := models.BankRequest{
		SwiftCode:     "AAISALTRXXX",
		BankName:      "UNITED BANK OF ALBANIA SH.A",
		Address:       "TIRANA",
		IsHeadquarter: true,
		CountryISO2:   "AL",
		CountryName:   "ALBANIA",
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/swift-codes", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "swiftctl", r.Header.Get("User-Agent"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"swiftCode": "AAISALTRXXX",
			"bankName": "UNITED BANK OF ALBANIA SH.A",
			"address": "TIRANA",
			"isHeadquarter": true,
			"countryISO2": "AL",
			"countryName": "ALBANIA"
		}`, string(body))

		writeJSON(w, http.StatusCreated, models.MessageResponse{Message: "ok"})
	}, "secret")

	got, err := client.AddBank(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, "ok", got.Message)
}

func TestDeleteBank(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1/swift-codes/AAISALTRXXX", r.URL.Path)
		assert.Equal(t, "Bearer late-token", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "ok"})
	}, "")
	client.SetToken("  late-token ")

	got, err := client.DeleteBank(context.Background(), "AAISALTRXXX")

	require.NoError(t, err)
	assert.Equal(t, "ok", got.Message)
}

func TestVersion(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("1.2.3"))
	}, "")

	got, err := client.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "400", status: http.StatusBadRequest, body: "Validation Error: swiftCode: is required", wantErr: ErrBadRequest},
		{name: "401", status: http.StatusUnauthorized, body: "Token is expired", wantErr: ErrUnauthorized},
		{name: "404", status: http.StatusNotFound, body: "Bank not found", wantErr: ErrNotFound},
		{name: "409", status: http.StatusConflict, body: "Bank already exists", wantErr: ErrConflict},
		{name: "500", status: http.StatusInternalServerError, body: "Internal Server Error", wantErr: ErrInternalServerError},
		{name: "503", status: http.StatusServiceUnavailable, body: "", wantErr: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tt.body, tt.status)
			}, "")

			_, err := client.GetBank(context.Background(), "AAISALTRXXX")

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.body)
		})
	}
}

func TestErrorMapping_UnknownStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}, "")

	_, err := client.Version(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestRequestError_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	address := srv.URL
	srv.Close()

	client, err := NewHTTPSwiftCodesClient(config.ClientAdapter{HTTPAddress: address, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	_, err = client.GetBank(context.Background(), "AAISALTRXXX")
	assert.ErrorContains(t, err, "get bank request")
}
