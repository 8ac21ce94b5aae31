package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/nlohrer/practice-tracker/internal/contract"
	"github.com/nlohrer/practice-tracker/internal/repository"
	"github.com/nlohrer/practice-tracker/internal/service"
)

// respondJSON writes a JSON response with the given status.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("encoding response")
	}
}

// respondError writes a JSON error message with the given status.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, map[string]string{"error": message})
}

// respondServiceError maps a service-layer error onto the wire: validation
// errors carry their field detail with 400, not-found maps to 404, a
// missing username to 400, and everything else is an unexpected
// persistence failure reported as 500.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *contract.ValidationError
	switch {
	case errors.As(err, &verr):
		respondJSON(w, r, http.StatusBadRequest, verr)
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrMissingUsername):
		respondError(w, r, http.StatusBadRequest, err.Error())
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("unexpected failure")
		respondError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
