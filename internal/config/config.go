// Package config reads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Storage StorageConfig
	Admin   AdminConfig
	SMTP    SMTPConfig
	Visits  VisitsConfig
}

type ServerConfig struct {
	Host            string        `env:"HOST"`
	Port            int           `env:"PORT"             envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE"         envDefault:"debug"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	CookieSecure    bool          `env:"COOKIE_SECURE"    envDefault:"false"`
}

// Addr is the listen address for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type StorageConfig struct {
	Driver       string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	DatabasePath string `env:"DATABASE_PATH"  envDefault:"portfolio.db"`
	RedisURL     string `env:"REDIS_URL"`
	RedisPrefix  string `env:"REDIS_PREFIX"   envDefault:"portfolio:"`
}

type AdminConfig struct {
	// DefaultPassword applies until a password is changed from the dashboard.
	DefaultPassword string `env:"ADMIN_DEFAULT_PASSWORD" envDefault:"admin123"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"  envDefault:"smtp.gmail.com"`
	Port     string `env:"SMTP_PORT"  envDefault:"587"`
	User     string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	// To overrides the contact section's email as the form recipient.
	To string `env:"CONTACT_TO"`
}

type VisitsConfig struct {
	Enabled   bool          `env:"TRACK_VISITS"    envDefault:"true"`
	Retention time.Duration `env:"VISIT_RETENTION" envDefault:"8760h"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port))
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.Storage.DatabasePath) == "" {
			errs = append(errs, errors.New("DATABASE_PATH is required for the sqlite driver"))
		}
	case DriverRedis:
		if strings.TrimSpace(c.Storage.RedisURL) == "" {
			errs = append(errs, errors.New("REDIS_URL is required for the redis driver"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}

	if c.Admin.DefaultPassword == "" {
		errs = append(errs, errors.New("ADMIN_DEFAULT_PASSWORD must not be empty"))
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown LOG_FORMAT %q", c.Log.Format))
	}

	if c.Visits.Retention <= 0 {
		errs = append(errs, errors.New("VISIT_RETENTION must be positive"))
	}

	return errors.Join(errs...)
}
