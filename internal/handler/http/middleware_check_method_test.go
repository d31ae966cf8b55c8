// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router.Route("/v1", func(r chi.Router) {
		r.Get("/version", ok)
		r.Post("/items", ok)
		r.Get("/items/{id}", ok)
		r.Delete("/items/{id}", ok)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "allowed GET", method: http.MethodGet, path: "/v1/version", wantStatus: http.StatusOK},
		{name: "POST on GET route", method: http.MethodPost, path: "/v1/version", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET"},
		{name: "PUT on param route", method: http.MethodPut, path: "/v1/items/42", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, DELETE"},
		{name: "GET on collection", method: http.MethodGet, path: "/v1/items", wantStatus: http.StatusMethodNotAllowed, wantAllow: "POST"},
		{name: "unknown path", method: http.MethodGet, path: "/v1/unknown", wantStatus: http.StatusNotFound},
	}

	router := buildRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantAllow != "" {
				assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
			}
		})
	}
}

func TestCheckHTTPMethod_OnServiceRoutes(t *testing.T) {
	rr := serve(t, newTestServices(), httptest.NewRequest(http.MethodPut, "/v1/swift-codes/AAISALTRXXX", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET, DELETE", rr.Header().Get("Allow"))
}

func TestCheckHTTPMethod_OnCollectionRoute(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/v1/swift-codes"},
		{method: http.MethodGet, path: "/v1/swift-codes/"},
		{method: http.MethodPut, path: "/v1/swift-codes"},
		{method: http.MethodDelete, path: "/v1/swift-codes/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(t, newTestServices(), httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, "POST", rr.Header().Get("Allow"))
		})
	}
}

func TestCheckHTTPMethod_OnCountryRoute(t *testing.T) {
	rr := serve(t, newTestServices(), httptest.NewRequest(http.MethodDelete, "/v1/swift-codes/country/PL", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET", rr.Header().Get("Allow"))
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/v1/version", nil))
			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		}()
	}
	wg.Wait()
}
