// Package response writes the JSON envelopes every handler shares.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

type ErrorResponse struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	ErrorID string `json:"errorId"`
}

type dataEnvelope struct {
	Data any `json:"data"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Data wraps v under a "data" key.
func Data(w http.ResponseWriter, status int, v any) {
	JSON(w, status, dataEnvelope{Data: v})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func StatusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes the single error response for err. action names the
// attempted operation ("create product") and prefixes unexpected failures.
func Error(w http.ResponseWriter, r *http.Request, log logger.ZapLogger, action string, err error) {
	kind := apperr.KindOf(err)
	status := StatusOf(kind)

	message := err.Error()
	if status == http.StatusInternalServerError && action != "" {
		message = "Failed to " + action + ": " + message
	}

	errorID := uuid.NewString()
	fields := []zap.Field{
		zap.String("errorId", errorID),
		zap.Int("status", status),
		zap.String("path", r.URL.Path),
		zap.String("requestId", RequestID(r)),
		zap.String("kind", kind.String()),
	}
	if status == http.StatusInternalServerError {
		log.Error("Unhandled failure", append(fields, zap.Error(err))...)
	} else {
		log.Warn("Handling error", append(fields, zap.String("message", message))...)
	}

	JSON(w, status, ErrorResponse{Error: message, Status: status, ErrorID: errorID})
}

// RequestID prefers the inbound header, then the id chi's middleware
// assigned, then "-".
func RequestID(r *http.Request) string {
	if id := r.Header.Get(RequestIDHeader); id != "" {
		return id
	}
	if id := middleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return "-"
}
