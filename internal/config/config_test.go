package config_test

import (
	"testing"
	"time"

	"github.com/credsink/credsink/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "testpass")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "credsink", cfg.Database.Name)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, 10, cfg.Capture.HashCost)
	assert.Equal(t, 50, cfg.Capture.ListLimit)
	assert.Equal(t, time.Duration(0), cfg.Capture.Retention)
	assert.Zero(t, cfg.Server.RateLimitPerMinute, "rate limiting is off by default")
}

func TestLoad_MissingDBPassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "testpass")
	t.Setenv("PORT", "3000")
	t.Setenv("HASH_COST", "12")
	t.Setenv("ATTEMPTS_LIST_LIMIT", "25")
	t.Setenv("ATTEMPT_RETENTION", "720h")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 12, cfg.Capture.HashCost)
	assert.Equal(t, 25, cfg.Capture.ListLimit)
	assert.Equal(t, 720*time.Hour, cfg.Capture.Retention)
	assert.Equal(t, 30, cfg.Server.RateLimitPerMinute)
}

func TestLoad_HashCostClamped(t *testing.T) {
	t.Setenv("DB_PASSWORD", "testpass")

	t.Run("below bcrypt minimum falls back to default", func(t *testing.T) {
		t.Setenv("HASH_COST", "1")
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, 10, cfg.Capture.HashCost)
	})

	t.Run("above bcrypt maximum is capped", func(t *testing.T) {
		t.Setenv("HASH_COST", "99")
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, 31, cfg.Capture.HashCost)
	})
}

func TestLoad_InvalidListLimit(t *testing.T) {
	t.Setenv("DB_PASSWORD", "testpass")
	t.Setenv("ATTEMPTS_LIST_LIMIT", "-5")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "capture",
		Password: "pw",
		Name:     "attempts",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=capture password=pw dbname=attempts sslmode=require",
		cfg.DSN(),
	)
}
