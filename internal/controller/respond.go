package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/l27labs/dca-engine/internal/errors"
)

func respond(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError maps the error taxonomy to HTTP statuses: validation 400,
// busy/state conflicts 409, gateway failures 502, everything else 500.
func respondError(w http.ResponseWriter, err error) {
	var (
		validation *apperrors.ValidationError
		busy       *apperrors.BusyError
		state      *apperrors.StateError
		gateway    *apperrors.GatewayError
	)
	switch {
	case errors.As(err, &validation):
		respond(w, http.StatusBadRequest, map[string]string{"error": validation.Msg})
	case errors.As(err, &busy):
		respond(w, http.StatusConflict, map[string]string{"error": busy.Error()})
	case errors.As(err, &state):
		respond(w, http.StatusConflict, map[string]string{"error": state.Msg})
	case errors.As(err, &gateway):
		respond(w, http.StatusBadGateway, map[string]string{"error": gateway.Msg})
	default:
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
