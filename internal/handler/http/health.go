package http

import (
	"net/http"

	"github.com/MKhiriev/go-swift-codes/internal/app"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/internal/utils"
	"github.com/MKhiriev/go-swift-codes/models"
)

// getHealth answers 200 while the storage is reachable and 503 otherwise.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	status, code := app.StatusOK, http.StatusOK
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		status, code = app.StatusUnavailable, http.StatusServiceUnavailable
	}

	if _, err := utils.WriteJSON(w, models.HealthResponse{Status: status}, code); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.getHealth").Send()
	}
}
