package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"admanager/internal/core/domain"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// decode reads the JSON body into v and answers 400 when it does not parse.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:     "invalid request body: " + err.Error(),
			RequestID: w.Header().Get(requestIDHeader),
		})
		return false
	}
	return true
}

// fail maps use case errors onto status codes. Unexpected errors are logged
// and hidden from the client.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", w.Header().Get(requestIDHeader)),
			slog.Any("error", err))
		msg = "internal error"
	}
	h.writeJSON(w, status, errorResponse{Error: msg, RequestID: w.Header().Get(requestIDHeader)})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrUnknownMode):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrParentNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRemoteUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
