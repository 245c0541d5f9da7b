package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"wheelshare-backend/internal/domain"
	"wheelshare-backend/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError maps the domain error taxonomy to HTTP status codes. Domain
// errors propagate untouched up to this boundary.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDateRange):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrVehicleUnavailable),
		errors.Is(err, domain.ErrInvalidStateTransition):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrDocumentNotVerified):
		writeMessage(w, http.StatusForbidden, err.Error())
	default:
		logger.Error("Unhandled error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}
