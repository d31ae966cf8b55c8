package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-swift-codes/internal/app"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/internal/service"
	"github.com/MKhiriev/go-swift-codes/internal/utils"
	"github.com/MKhiriev/go-swift-codes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func tokenFor(subject string) models.Token {
	var token models.Token
	token.Subject = subject
	return token
}

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lower case scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty header", header: "", wantErr: ErrInvalidAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "only spaces", header: "   ", wantErr: ErrInvalidAuthorizationHeader},
		{name: "too many parts", header: "Bearer a b", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		enabled    bool
		header     string
		parseErr   error
		wantStatus int
		wantBody   string
		wantNext   bool
	}{
		{
			name:       "disabled auth lets everything through",
			enabled:    false,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			enabled:    true,
			wantStatus: http.StatusUnauthorized,
			wantBody:   ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:       "malformed header",
			enabled:    true,
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
			wantBody:   ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:       "expired token",
			enabled:    true,
			header:     "Bearer expired",
			parseErr:   service.ErrTokenIsExpired,
			wantStatus: http.StatusUnauthorized,
			wantBody:   app.MsgTokenIsExpired,
		},
		{
			name:       "invalid token",
			enabled:    true,
			header:     "Bearer forged",
			parseErr:   service.ErrTokenIsExpiredOrInvalid,
			wantStatus: http.StatusUnauthorized,
			wantBody:   app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:       "valid token",
			enabled:    true,
			header:     "Bearer good",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuthService(&mockAuthService{
				enabled: tt.enabled,
				parseToken: func(context.Context, string) (models.Token, error) {
					if tt.parseErr != nil {
						return models.Token{}, tt.parseErr
					}
					return tokenFor("operator"), nil
				},
			})

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.header, next)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
			}
		})
	}
}

func TestAuth_SubjectInContext(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		enabled: true,
		parseToken: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "good", tokenString)
			return tokenFor("operator"), nil
		},
	})

	var subject string
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok = utils.GetSubjectFromContext(r.Context())
	})

	executeAuth(h, "Bearer good", next)

	require.True(t, ok)
	assert.Equal(t, "operator", subject)
}

func TestAuth_DisabledLeavesContextUntouched(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{enabled: false})

	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = utils.GetSubjectFromContext(r.Context())
	})

	executeAuth(h, "Bearer ignored", next)

	assert.False(t, ok)
}

func TestAuth_ReadRoutesArePublic(t *testing.T) {
	services := newTestServices()
	services.AuthService = &mockAuthService{enabled: true}

	for _, path := range []string{"/v1/swift-codes/AAISALTRXXX", "/v1/swift-codes/country/AL", "/v1/version", "/v1/health"} {
		rr := serve(t, services, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}

	rr := serve(t, services, httptest.NewRequest(http.MethodDelete, "/v1/swift-codes/AAISALTRXXX", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = serve(t, services, httptest.NewRequest(http.MethodPost, "/v1/swift-codes", strings.NewReader(validBankJSON)))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
