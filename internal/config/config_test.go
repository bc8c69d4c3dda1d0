package config

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = log.New(io.Discard, "", 0)

func TestLoadDefaults(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := Load("", log.New(&buf, "", 0))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	assert.Equal(t, defaultDSN, cfg.DatabaseDSN)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, "warn", cfg.DBLogLevel)
	assert.Equal(t, 200*time.Millisecond, cfg.DBSlowThreshold)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Contains(t, buf.String(), "DATABASE_DSN is using the default value")
	assert.Contains(t, buf.String(), "CORS_ALLOWED_ORIGINS is using the default value")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", " SQLite ")
	t.Setenv("DATABASE_DSN", "file:venue.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("DB_LOG_LEVEL", "INFO")
	t.Setenv("DB_SLOW_THRESHOLD", "1s")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")

	cfg, err := Load("", quiet)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "file:venue.db", cfg.DatabaseDSN)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, "info", cfg.DBLogLevel)
	assert.Equal(t, time.Second, cfg.DBSlowThreshold)
	assert.Equal(t, 3, cfg.DBMaxOpenConns)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venue.yaml")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT: \"7000\"\nDATABASE_DRIVER: sqlite\nDATABASE_DSN: file:test.db\n"), 0o600))

	cfg, err := Load(path, quiet)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.HTTPPort)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)

	t.Setenv("HTTP_PORT", "7001")
	cfg, err = Load(path, quiet)
	require.NoError(t, err)
	assert.Equal(t, "7001", cfg.HTTPPort, "env wins over file")
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), quiet)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{HTTPPort: "8080", DatabaseDriver: DriverSQLite, DatabaseDSN: "file:x.db"}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		is      error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.DatabaseDriver = "mysql" }, wantErr: true, is: ErrUnknownDriver},
		{name: "empty dsn", mutate: func(c *Config) { c.DatabaseDSN = " " }, wantErr: true},
		{name: "empty port", mutate: func(c *Config) { c.HTTPPort = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.is != nil {
				require.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "oracle")

	_, err := Load("", quiet)
	require.ErrorIs(t, err, ErrUnknownDriver)
}

func TestAllowedOriginsSkipsBlanks(t *testing.T) {
	c := Config{CORSOrigins: " https://a.example ,, "}
	assert.Equal(t, []string{"https://a.example"}, c.AllowedOrigins())
}
