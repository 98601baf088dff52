package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ANALYTICS_FETCH_POLICY", "")
	cfg := LoadConfig()

	assert.Equal(t, FetchPolicyBestEffort, cfg.Analytics.FetchPolicy)
	assert.Equal(t, 5.0, cfg.Analytics.CriticalThreshold)
	assert.Equal(t, 8, cfg.Analytics.FetchConcurrency)
	assert.Equal(t, 5*time.Minute, cfg.Analytics.CacheTTL)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("ANALYTICS_CRITICAL_THRESHOLD", "4.5")
	t.Setenv("ANALYTICS_FETCH_POLICY", FetchPolicyStrict)

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 4.5, cfg.Analytics.CriticalThreshold)
	assert.Equal(t, FetchPolicyStrict, cfg.Analytics.FetchPolicy)
}

func TestGetEnvFallsBackOnGarbage(t *testing.T) {
	t.Setenv("ANALYTICS_FETCH_CONCURRENCY", "many")
	t.Setenv("ANALYTICS_CACHE_TTL", "soon")

	assert.Equal(t, 8, getEnvInt("ANALYTICS_FETCH_CONCURRENCY", 8))
	assert.Equal(t, time.Minute, getEnvDuration("ANALYTICS_CACHE_TTL", time.Minute))
}
