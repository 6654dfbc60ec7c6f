package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server struct {
		Port            string        `env:"SERVER_PORT" envDefault:"8080"`
		ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
		WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
		ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
		AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	}
	Database struct {
		Host        string `env:"DB_HOST" envDefault:"localhost"`
		Port        string `env:"DB_PORT" envDefault:"5432"`
		User        string `env:"DB_USER" envDefault:"postgres"`
		Password    string `env:"DB_PASSWORD"`
		Name        string `env:"DB_NAME" envDefault:"clubcore"`
		SSLMode     string `env:"DB_SSLMODE" envDefault:"disable"`
		SearchPath  string `env:"DB_SCHEMA" envDefault:"public"`
		AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
	}
	Redis struct {
		// Empty address selects the in-process cache.
		Addr     string `env:"REDIS_ADDR"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}
	Permify struct {
		// Empty host disables the relationship mirror.
		Host          string        `env:"PERMIFY_HOST"`
		Tenant        string        `env:"PERMIFY_TENANT" envDefault:"t1"`
		SchemaVersion string        `env:"PERMIFY_SCHEMA_VERSION"`
		SyncInterval  time.Duration `env:"PERMIFY_SYNC_INTERVAL" envDefault:"30m"`
	}
	JWT struct {
		Secret       string        `env:"JWT_SECRET" envDefault:"change-me"`
		ExpiryPeriod time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	}
	Email struct {
		// Provider is "sendgrid", "smtp" or empty to disable delivery.
		Provider string `env:"EMAIL_PROVIDER"`
		From     string `env:"EMAIL_FROM" envDefault:"no-reply@desbravaprovas.com.br"`
		FromName string `env:"EMAIL_FROM_NAME" envDefault:"Desbrava Provas"`
		Sendgrid struct {
			APIKey string `env:"SENDGRID_API_KEY"`
		}
		SMTP struct {
			Host     string `env:"SMTP_HOST"`
			Port     int    `env:"SMTP_PORT" envDefault:"587"`
			Username string `env:"SMTP_USERNAME"`
			Password string `env:"SMTP_PASSWORD"`
		}
	}
	Notifications struct {
		Timeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"5s"`
	}
	Cache struct {
		PublicExamsTTL time.Duration `env:"CACHE_PUBLIC_EXAMS_TTL" envDefault:"5m"`
	}
	Telemetry struct {
		Endpoint    string `env:"OTEL_EXPORTER_ENDPOINT"`
		ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"clubcore"`
	}
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	BaseURL  string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	d := c.Database
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode, d.SearchPath)
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
