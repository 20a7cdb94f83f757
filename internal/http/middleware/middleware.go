package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/apperr"
	"github.com/fekuna/omnipos-catalog-service/internal/http/response"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/requestid"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// StructuredLogger logs one line per request, at Warn for 4xx and Error
// for 5xx.
func StructuredLogger(log logger.ZapLogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			fields := []zap.Field{
				zap.String("http.request.method", r.Method),
				zap.String("http.route", routePattern(r)),
				zap.String("url.path", r.URL.Path),
				zap.String("url.query", r.URL.RawQuery),
				zap.Int("http.response.status_code", ww.Status()),
				zap.Int("http.response.body.size", ww.BytesWritten()),
				zap.Duration("duration", duration),
				zap.String("requestId", response.RequestID(r)),
			}
			if sc := trace.SpanFromContext(r.Context()).SpanContext(); sc.IsValid() {
				fields = append(fields,
					zap.String("trace_id", sc.TraceID().String()),
					zap.String("span_id", sc.SpanID().String()),
				)
			}

			switch {
			case ww.Status() >= 500:
				log.Error("HTTP request completed", fields...)
			case ww.Status() >= 400:
				log.Warn("HTTP request completed", fields...)
			default:
				log.Info("HTTP request completed", fields...)
			}
		})
	}
}

// Recoverer turns a handler panic into a 500 error response.
func Recoverer(log logger.ZapLogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("Handler panicked", zap.Any("panic", rec), zap.Stack("stack"))
				if ww.Status() != 0 {
					// Headers already went out. Only the log is left.
					return
				}
				response.Error(ww, r, log, "", apperr.Internal("Internal server error", fmt.Errorf("panic: %v", rec)))
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// RequestIDHeader echoes the request id back to the client and stores it
// on the context for dispatch.
func RequestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := response.RequestID(r)
		w.Header().Set(response.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(requestid.WithID(r.Context(), id)))
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
