package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpggio/upkeep/internal/domain/complaint"
	"github.com/rpggio/upkeep/internal/domain/resident"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError translates typed domain failures into HTTP status codes.
// Anything unclassified, including store-integrity faults, becomes a 500
// with a message that leaks nothing about internals.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, complaint.ErrInvalidInput), errors.Is(err, resident.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, complaint.ErrComplaintNotFound),
		errors.Is(err, complaint.ErrResidentNotFound),
		errors.Is(err, resident.ErrResidentNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		if h.logger != nil {
			h.logger.ErrorContext(r.Context(), "request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err,
			)
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
