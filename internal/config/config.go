package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultDSN         = "host=localhost user=postgres password=postgres dbname=venue port=5432 sslmode=disable"
	defaultCORSOrigins = "http://localhost:3000"
)

var ErrUnknownDriver = errors.New("unknown database driver")

type Config struct {
	HTTPPort        string
	DatabaseDriver  string
	DatabaseDSN     string
	CORSOrigins     string
	AutoMigrate     bool
	DBLogLevel      string        // silent, error, warn, info
	DBSlowThreshold time.Duration // slow query log threshold
	DBMaxOpenConns  int
}

// Load reads configuration from defaults, the optional YAML file at path and
// the environment, in increasing precedence.
func Load(path string, lg *log.Logger) (*Config, error) {
	v := viper.New()
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DATABASE_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_DSN", defaultDSN)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("DB_SLOW_THRESHOLD", 200*time.Millisecond)
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		HTTPPort:        v.GetString("HTTP_PORT"),
		DatabaseDriver:  strings.ToLower(strings.TrimSpace(v.GetString("DATABASE_DRIVER"))),
		DatabaseDSN:     v.GetString("DATABASE_DSN"),
		CORSOrigins:     v.GetString("CORS_ALLOWED_ORIGINS"),
		AutoMigrate:     v.GetBool("AUTO_MIGRATE"),
		DBLogLevel:      strings.ToLower(v.GetString("DB_LOG_LEVEL")),
		DBSlowThreshold: v.GetDuration("DB_SLOW_THRESHOLD"),
		DBMaxOpenConns:  v.GetInt("DB_MAX_OPEN_CONNS"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.DatabaseDriver == DriverPostgres && cfg.DatabaseDSN == defaultDSN {
		lg.Println("[WARN] DATABASE_DSN is using the default value, set your own Postgres connection for production.")
	}
	if cfg.CORSOrigins == defaultCORSOrigins {
		lg.Println("[WARN] CORS_ALLOWED_ORIGINS is using the default value, set your own domain for production.")
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.DatabaseDriver)
	}
	if strings.TrimSpace(c.DatabaseDSN) == "" {
		return errors.New("DATABASE_DSN is empty")
	}
	if strings.TrimSpace(c.HTTPPort) == "" {
		return errors.New("HTTP_PORT is empty")
	}
	return nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
