package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-swift-codes/internal/app"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/internal/utils"
	"github.com/MKhiriev/go-swift-codes/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getBank(w http.ResponseWriter, r *http.Request) {
	swiftCode := chi.URLParam(r, "swiftCode")

	bank, err := h.services.SwiftCodesService.GetBank(r.Context(), swiftCode)
	if err != nil {
		writeError(w, r, err, "Handler.getBank")
		return
	}

	if _, err = utils.WriteJSON(w, bank, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.getBank").Send()
	}
}

func (h *Handler) getCountryBanks(w http.ResponseWriter, r *http.Request) {
	countryISO2 := chi.URLParam(r, "countryISO2code")

	banks, err := h.services.SwiftCodesService.GetCountryBanks(r.Context(), countryISO2)
	if err != nil {
		writeError(w, r, err, "Handler.getCountryBanks")
		return
	}

	if _, err = utils.WriteJSON(w, banks, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.getCountryBanks").Send()
	}
}

func (h *Handler) addBank(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.BankRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "Handler.addBank").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	bank, err := h.services.SwiftCodesService.AddBank(r.Context(), request)
	if err != nil {
		writeError(w, r, err, "Handler.addBank")
		return
	}

	subject, _ := utils.GetSubjectFromContext(r.Context())
	log.Info().Str("swift_code", bank.SwiftCode).Str("subject", subject).Msg("bank added")

	if _, err = utils.WriteJSON(w, models.MessageResponse{Message: app.MsgOK}, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "Handler.addBank").Send()
	}
}

func (h *Handler) deleteBank(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	swiftCode := chi.URLParam(r, "swiftCode")

	if err := h.services.SwiftCodesService.DeleteBank(r.Context(), swiftCode); err != nil {
		writeError(w, r, err, "Handler.deleteBank")
		return
	}

	subject, _ := utils.GetSubjectFromContext(r.Context())
	log.Info().Str("swift_code", swiftCode).Str("subject", subject).Msg("bank deleted")

	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: app.MsgOK}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "Handler.deleteBank").Send()
	}
}
