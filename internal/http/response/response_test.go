package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{apperr.Conflict("Product SKU already exists"), http.StatusConflict, "Product SKU already exists"},
		{apperr.NotFound("Product not found"), http.StatusNotFound, "Product not found"},
		{apperr.Validation("name is required"), http.StatusBadRequest, "name is required"},
		{apperr.Transient("connection pool exhausted", errors.New("deadline")), http.StatusInternalServerError, "Failed to create product: connection pool exhausted"},
		{errors.New("already exists"), http.StatusInternalServerError, "Failed to create product: already exists"},
	}
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			log := logger.New(zap.New(core))

			r := httptest.NewRequest("POST", "/api/v1/products", nil)
			r.Header.Set(RequestIDHeader, "req-42")
			w := httptest.NewRecorder()
			Error(w, r, log, "create product", tc.err)

			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
			var body ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Error != tc.msg || body.Status != tc.status {
				t.Fatalf("body = %+v", body)
			}
			if _, err := uuid.Parse(body.ErrorID); err != nil {
				t.Fatalf("errorId %q: %v", body.ErrorID, err)
			}

			entries := logs.All()
			if len(entries) != 1 {
				t.Fatalf("log entries = %d", len(entries))
			}
			fields := entries[0].ContextMap()
			if fields["errorId"] != body.ErrorID || fields["requestId"] != "req-42" || fields["path"] != "/api/v1/products" {
				t.Fatalf("log fields = %v", fields)
			}
		})
	}
}

func TestDataEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	Data(w, http.StatusCreated, map[string]string{"sku": "ABC"})
	if w.Code != http.StatusCreated || w.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("status %d, content type %q", w.Code, w.Header().Get("Content-Type"))
	}
	if got := w.Body.String(); got != "{\"data\":{\"sku\":\"ABC\"}}\n" {
		t.Fatalf("body = %q", got)
	}

	w = httptest.NewRecorder()
	NoContent(w)
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Fatalf("no content: %d %q", w.Code, w.Body.String())
	}
}

func TestRequestIDFallback(t *testing.T) {
	if got := RequestID(httptest.NewRequest("GET", "/", nil)); got != "-" {
		t.Fatalf("got %q", got)
	}
}
