package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"supergo/internal/middleware"
	"supergo/internal/model"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes a standardised error response carrying the request's
// correlation id.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	logger.Warn().
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: middleware.GetRequestID(r.Context()),
	})
}

// writeDomainError maps a domain error to its HTTP status.
func writeDomainError(w http.ResponseWriter, r *http.Request, err *model.DomainError, logger zerolog.Logger) {
	writeError(w, r, domainStatus(err.Code), err.Code, err.Message, logger)
}

func domainStatus(code string) int {
	switch code {
	case model.ErrCodeProductNotFound, model.ErrCodeUserNotFound, model.ErrCodeOrderNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidLogin:
		return http.StatusUnauthorized
	case model.ErrCodeDuplicateEmail, model.ErrCodeDuplicateCoupon:
		return http.StatusConflict
	case model.ErrCodeInvalidJSON, model.ErrCodeValidation, model.ErrCodeInvalidQuantity:
		return http.StatusBadRequest
	case model.ErrCodeInvalidCoupon, model.ErrCodeExpiredCoupon, model.ErrCodeEmptyCart:
		return http.StatusUnprocessableEntity
	case model.ErrCodeStoreLoading:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
