package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/internal/http/response"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/requestid"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecovererWritesJSONError(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Recoverer(logger.NewNop()))
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var body response.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Status != 500 || body.ErrorID == "" || body.Error != "Internal server error" {
		t.Fatalf("body = %+v", body)
	}
}

func TestRecovererLeavesCommittedResponse(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := chi.NewRouter()
	r.Use(Recoverer(logger.New(zap.New(core))))
	r.Get("/late", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("partial"))
		panic("after write")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/late", nil))

	if w.Code != http.StatusAccepted || w.Body.String() != "partial" {
		t.Fatalf("response rewritten: %d %q", w.Code, w.Body.String())
	}
	if logs.FilterMessage("Handler panicked").Len() != 1 {
		t.Fatalf("panic not logged: %v", logs.All())
	}
}

func TestStructuredLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.New(zap.New(core))

	r := chi.NewRouter()
	r.Use(StructuredLogger(log))
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/items/1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/items/missing", nil))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries = %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("levels = %v, %v", entries[0].Level, entries[1].Level)
	}
	if route := entries[0].ContextMap()["http.route"]; route != "/items/{id}" {
		t.Fatalf("route = %v", route)
	}
}

func TestRequestIDHeaderEchoes(t *testing.T) {
	var seen string
	h := RequestIDHeader(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(response.RequestIDHeader, "abc")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Header().Get(response.RequestIDHeader) != "abc" {
		t.Fatalf("header = %q", w.Header().Get(response.RequestIDHeader))
	}
	if seen != "abc" {
		t.Fatalf("context id = %q", seen)
	}
}
