package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-catalog-service/config"
	"github.com/fekuna/omnipos-catalog-service/internal/catalog"
	"github.com/fekuna/omnipos-catalog-service/internal/http/middleware"
	"github.com/fekuna/omnipos-catalog-service/internal/http/response"
	locH "github.com/fekuna/omnipos-catalog-service/internal/location/handler"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	prodH "github.com/fekuna/omnipos-catalog-service/internal/product/handler"
	uomH "github.com/fekuna/omnipos-catalog-service/internal/uom/handler"
	varH "github.com/fekuna/omnipos-catalog-service/internal/variant/handler"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	serviceName = "Catalog API Server"
	version     = "1.0.0"
)

type Server struct {
	router  *chi.Mux
	config  *config.ServerConfig
	clients catalog.Clients
	metrics prometheus.Gatherer
	logger  logger.ZapLogger
	http    *http.Server
}

func NewServer(cfg *config.ServerConfig, clients catalog.Clients, metrics prometheus.Gatherer, log logger.ZapLogger) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		config:  cfg,
		clients: clients,
		metrics: metrics,
		logger:  log,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.http = &http.Server{
		Addr:         cfg.HTTPPort,
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(middleware.RequestIDHeader)
	s.router.Use(middleware.StructuredLogger(s.logger))
	s.router.Use(middleware.Recoverer(s.logger))
}

func (s *Server) setupRoutes() {
	products := prodH.NewProductHandler(s.clients.Products, s.logger)
	variants := varH.NewVariantHandler(s.clients.Variants, s.logger)
	uoms := uomH.NewUOMHandler(s.clients.UOMs, s.logger)
	locations := locH.NewLocationHandler(s.clients.Locations, s.logger)

	s.router.Get("/", index)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			products.Mount(r)
			r.Route("/{productId}/variants", variants.Mount)
		})
		r.Route("/unit-of-measures", uoms.Mount)
		r.Route("/locations", locations.Mount)
	})

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	s.router.Get("/metrics", promhttp.HandlerFor(s.metrics, promhttp.HandlerOpts{}).ServeHTTP)
}

func index(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": serviceName,
		"version": version,
	})
}

// Handler is the router wrapped with otelhttp.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.router, "http-server",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
		}),
		otelhttp.WithMetricAttributesFn(func(r *http.Request) []attribute.KeyValue {
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			return []attribute.KeyValue{attribute.String("http.route", route)}
		}),
	)
}

// Start blocks until the server stops. It returns http.ErrServerClosed
// after Shutdown.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("address", s.http.Addr))
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
