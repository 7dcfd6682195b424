package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, ":memory:", cfg.DB.DSN)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.GetCORSOrigins())
	assert.False(t, cfg.CacheEnabled())
	assert.Equal(t, ":3000", cfg.GetServerAddr())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "8081")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/journal")
	t.Setenv("CORS_TRUSTED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "1m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.GetCORSOrigins())
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Env:             "test",
			Port:            3000,
			ShutdownTimeout: time.Second,
			DB:              DBConfig{Driver: DriverSQLite, DSN: ":memory:", MaxOpenConns: 1, MaxConnLifetime: time.Hour},
			CORS:            CORSConfig{TrustedOrigins: []string{"*"}},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"ok", func(c *Config) {}, ""},
		{"bad env", func(c *Config) { c.Env = "qa" }, "invalid environment"},
		{"port zero", func(c *Config) { c.Port = 0 }, "invalid port"},
		{"port too large", func(c *Config) { c.Port = 70000 }, "invalid port"},
		{"bad driver", func(c *Config) { c.DB.Driver = "mysql" }, "invalid DB_DRIVER"},
		{"empty dsn", func(c *Config) { c.DB.DSN = "  " }, "DATABASE_URL"},
		{"pool size", func(c *Config) { c.DB.MaxOpenConns = 0 }, "DB_MAX_OPEN_CONNS"},
		{"lifetime", func(c *Config) { c.DB.MaxConnLifetime = 0 }, "DB_MAX_CONN_LIFETIME"},
		{"shutdown", func(c *Config) { c.ShutdownTimeout = 0 }, "SHUTDOWN_TIMEOUT"},
		{"cache ttl", func(c *Config) { c.Redis.Addr = "localhost:6379" }, "CACHE_TTL"},
		{"no origins", func(c *Config) { c.CORS.TrustedOrigins = []string{" ", ""} }, "trusted origin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("APP_ENV", "nope")
	assert.Panics(t, func() { MustLoad() })
}
