package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/conference-hub/internal/logging"
	"github.com/example/conference-hub/internal/service"
	"github.com/example/conference-hub/internal/validation"
)

var errBadRequestBody = errors.New("invalid request body")

type errorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.Default()
	}
	return responder{logger: logger}
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (r responder) writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	message := http.StatusText(status)
	if err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			message = msg
		}
	}
	r.writeJSON(ctx, w, status, errorResponse{Message: message})
}

// handleServiceError maps service failures onto HTTP statuses: missing
// records are 404, business-rule violations 400, scheduling and uniqueness
// conflicts 409, field validation failures 422, anything else 500.
func (r responder) handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		r.writeError(ctx, w, http.StatusInternalServerError, errors.New("unknown error"))
		return
	}

	var vErr *validation.Error
	switch {
	case errors.Is(err, service.ErrNotFound):
		r.writeError(ctx, w, http.StatusNotFound, err)
	case errors.Is(err, service.ErrInvalidOperation):
		r.writeError(ctx, w, http.StatusBadRequest, err)
	case errors.Is(err, service.ErrConflict):
		r.writeError(ctx, w, http.StatusConflict, err)
	case errors.As(err, &vErr):
		r.writeJSON(ctx, w, http.StatusUnprocessableEntity, errorResponse{
			Message: "validation failed",
			Errors:  vErr.FieldErrors,
		})
	default:
		r.loggerFor(ctx).ErrorContext(ctx, "request failed", "error", err)
		r.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}

func (r responder) loggerFor(ctx context.Context) *slog.Logger {
	if logger := logging.FromContext(ctx); logger != nil {
		return logger
	}
	return r.logger
}

func decodeJSON(req *http.Request, dst any) error {
	decoder := json.NewDecoder(req.Body)
	if err := decoder.Decode(dst); err != nil {
		return errBadRequestBody
	}
	return nil
}
