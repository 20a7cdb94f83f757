package catalog

import (
	"time"

	"github.com/fekuna/omnipos-catalog-service/config"
	"github.com/fekuna/omnipos-catalog-service/internal/database/postgres"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"go.uber.org/zap"
)

// OpenRepositories connects the configured store. The returned func
// releases it.
func OpenRepositories(cfg *config.Config, log logger.ZapLogger) (Repositories, func(), error) {
	if cfg.Store.Driver == config.StoreMemory {
		log.Warn("Using the in-memory store; data is lost on exit")
		return MemoryRepositories(), func() {}, nil
	}

	db, err := postgres.NewPostgres(PostgresConfig(&cfg.Postgres))
	if err != nil {
		return Repositories{}, nil, err
	}
	log.Info("Connected to PostgreSQL database",
		zap.String("db_name", cfg.Postgres.DBName),
		zap.Int("max_open_conns", cfg.Postgres.MaxOpenConns),
		zap.Duration("acquire_timeout", cfg.Postgres.AcquireTimeout()),
	)

	pool := postgres.NewPool(db, cfg.Postgres.AcquireTimeout())
	return PostgresRepositories(pool), func() { _ = pool.Close() }, nil
}

func PostgresConfig(c *config.PostgresConfig) *postgres.Config {
	return &postgres.Config{
		Host:            c.Host,
		Port:            c.Port,
		User:            c.User,
		Password:        c.Password,
		DBName:          c.DBName,
		SSLMode:         c.SSLMode,
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    min(c.MaxIdleConns, c.MaxOpenConns),
		ConnMaxLifetime: time.Duration(c.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(c.ConnMaxIdleTime) * time.Second,
		AcquireTimeout:  c.AcquireTimeout(),
	}
}
