package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-swift-codes/internal/app"
	"github.com/MKhiriev/go-swift-codes/internal/logger"
	"github.com/MKhiriev/go-swift-codes/internal/service"
	"github.com/MKhiriev/go-swift-codes/internal/store"
	"github.com/MKhiriev/go-swift-codes/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrHeadBankNotFound:        http.StatusConflict,
	service.ErrChildBranchesFound:      http.StatusConflict,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrBankNotFound:      http.StatusNotFound,
	store.ErrCountryNotFound:   http.StatusNotFound,
	store.ErrBankAlreadyExists: http.StatusConflict,
	store.ErrTransient:         http.StatusServiceUnavailable,
}

var errorMessageMap = map[error]string{
	store.ErrBankNotFound:              app.MsgBankNotFound,
	store.ErrCountryNotFound:           app.MsgCountryNotFound,
	store.ErrBankAlreadyExists:         app.MsgBankAlreadyExists,
	service.ErrHeadBankNotFound:        app.MsgHeadBankNotFound,
	service.ErrChildBranchesFound:      app.MsgChildBranchesFound,
	service.ErrTokenIsExpired:          app.MsgTokenIsExpired,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	store.ErrTransient:                 app.MsgServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the response body for err. Validation failures
// list every violation; unknown errors never leak their text.
func messageFromError(err error) string {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return app.MsgValidationErrorPrefix + validationErr.Error()
	}

	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with its status and plain text message.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Send()

	http.Error(w, messageFromError(err), status)
}
