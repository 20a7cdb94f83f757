package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-catalog-service/config"
	"github.com/fekuna/omnipos-catalog-service/internal/catalog"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/proxy"
	"github.com/fekuna/omnipos-catalog-service/internal/server"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
		File:              cfg.Logger.File,
	}
	if cfg.IsDevelopment() {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 4. Choose the dispatch transport
	transport, closeTransport, err := newTransport(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Could not set up dispatch", zap.Error(err))
	}
	defer closeTransport()

	p := proxy.New(transport,
		proxy.WithWorkers(int64(cfg.Proxy.Workers)),
		proxy.WithLogger(appLogger),
		proxy.WithMetrics(proxy.NewMetrics(registry)),
	)

	// 5. Start HTTP Server
	srv := server.NewServer(&cfg.Server, catalog.NewClients(p), registry, appLogger)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		appLogger.Info("Shutting down server...")
	case err := <-errCh:
		appLogger.Error("Server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

// newTransport runs operations in process, or on a remote worker when
// PROXY_MODE=grpc.
func newTransport(cfg *config.Config, log logger.ZapLogger) (proxy.Transport, func(), error) {
	if cfg.Proxy.Mode == config.ProxyModeGRPC {
		conn, err := proxy.Dial(cfg.Proxy.Target)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Dispatching to remote worker", zap.String("target", cfg.Proxy.Target))
		return proxy.NewGRPCTransport(conn), func() { _ = conn.Close() }, nil
	}

	repos, closeStore, err := catalog.OpenRepositories(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	reg, err := catalog.NewRegistry(repos, log)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return proxy.NewLocalTransport(reg), closeStore, nil
}
