package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	ProxyModeLocal = "local"
	ProxyModeGRPC  = "grpc"

	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Postgres PostgresConfig
	Proxy    ProxyConfig
	Store    StoreConfig
}

type ServerConfig struct {
	AppEnv          string
	HTTPPort        string
	GRPCPort        string
	ReadTimeout     int // seconds
	WriteTimeout    int // seconds
	ShutdownTimeout int // seconds
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
	File              string
}

type PostgresConfig struct {
	Host             string
	Port             string
	User             string
	Password         string
	DBName           string
	SSLMode          string
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  int // seconds
	ConnMaxIdleTime  int // seconds
	AcquireTimeoutMS int
}

type ProxyConfig struct {
	Mode    string
	Target  string
	Workers int
}

type StoreConfig struct {
	Driver string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:          getEnv("APP_ENV", "dev"),
			HTTPPort:        getEnv("HTTP_PORT", ":8080"),
			GRPCPort:        getEnv("GRPC_PORT", ":8082"),
			ReadTimeout:     getEnvInt("HTTP_READ_TIMEOUT", 15),
			WriteTimeout:    getEnvInt("HTTP_WRITE_TIMEOUT", 150),
			ShutdownTimeout: getEnvInt("SHUTDOWN_TIMEOUT", 10),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
			File:              getEnv("LOGGER_FILE", ""),
		},
		Postgres: PostgresConfig{
			Host:             getEnv("POSTGRES_HOST", "localhost"),
			Port:             getEnv("POSTGRES_PORT", "5432"),
			User:             getEnv("POSTGRES_USER", "catalog"),
			Password:         getEnv("POSTGRES_PASSWORD", "catalog"),
			DBName:           getEnv("POSTGRES_DB", "catalog"),
			SSLMode:          getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:     getEnvInt("POSTGRES_MAX_OPEN_CONNS", 5),
			MaxIdleConns:     getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime:  getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime:  getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
			AcquireTimeoutMS: getEnvInt("POSTGRES_ACQUIRE_TIMEOUT_MS", 120000),
		},
		Proxy: ProxyConfig{
			Mode:    getEnv("PROXY_MODE", ProxyModeLocal),
			Target:  getEnv("PROXY_TARGET", "localhost:8082"),
			Workers: getEnvInt("PROXY_WORKERS", 64),
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", StorePostgres),
		},
	}
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	switch c.Proxy.Mode {
	case ProxyModeLocal:
	case ProxyModeGRPC:
		if c.Proxy.Target == "" {
			return errors.New("PROXY_TARGET is required when PROXY_MODE=grpc")
		}
	default:
		return fmt.Errorf("PROXY_MODE must be %q or %q, got %q", ProxyModeLocal, ProxyModeGRPC, c.Proxy.Mode)
	}
	if c.Proxy.Workers < 1 {
		return errors.New("PROXY_WORKERS must be >= 1")
	}

	switch c.Store.Driver {
	case StorePostgres, StoreMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StorePostgres, StoreMemory, c.Store.Driver)
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return errors.New("HTTP_READ_TIMEOUT and HTTP_WRITE_TIMEOUT must be positive")
	}
	if c.Postgres.AcquireTimeoutMS <= 0 {
		return errors.New("POSTGRES_ACQUIRE_TIMEOUT_MS must be positive")
	}
	if c.Postgres.MaxOpenConns < 1 {
		return errors.New("POSTGRES_MAX_OPEN_CONNS must be >= 1")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.AppEnv == "dev"
}

func (p *PostgresConfig) AcquireTimeout() time.Duration {
	return time.Duration(p.AcquireTimeoutMS) * time.Millisecond
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
