package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "release", version: "1.2.3"},
		{name: "empty", version: ""},
		{name: "banner", version: "Build version: v1.0.0\nBuild date: 2026-01-01\nBuild commit: abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.AppInfoService = &mockAppInfoService{version: tt.version}

			rr := serve(t, services, httptest.NewRequest(http.MethodGet, "/v1/version", nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.version, rr.Body.String())
		})
	}
}
