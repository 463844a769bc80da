package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foodiespot/concierge/internal/domain"
)

// ErrorResp is the JSON error envelope for all API endpoints.
type ErrorResp struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError

	var notFound *domain.NotFoundErr
	var validation *domain.ValidationErr
	var conflict *domain.ConflictErr
	switch {
	case errors.As(err, &notFound):
		statusCode = http.StatusNotFound
	case errors.As(err, &validation):
		statusCode = http.StatusBadRequest
	case errors.As(err, &conflict):
		statusCode = http.StatusConflict
	}

	respondJSON(w, statusCode, ErrorResp{Error: err.Error()})
}
