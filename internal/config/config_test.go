package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "http://localhost:5000/api", cfg.BaseURL)
	assert.Equal(t, "authToken", cfg.AuthHeader)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "file", cfg.TokenBackend)
	assert.Equal(t, "5000", cfg.HTTPPort)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("CLUB_API_URL", "https://api.club.example/api")
	t.Setenv("CLUB_AUTH_HEADER", "x-auth-token")
	t.Setenv("CLUB_REQUEST_TIMEOUT", "3s")
	t.Setenv("CLUB_TOKEN_BACKEND", "redis")
	t.Setenv("RATE_LIMIT_PER_MIN", "30")
	t.Setenv("MOCK_SEED", "false")

	cfg := Load()
	assert.Equal(t, "https://api.club.example/api", cfg.BaseURL)
	assert.Equal(t, "x-auth-token", cfg.AuthHeader)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "redis", cfg.TokenBackend)
	assert.Equal(t, 30, cfg.RateLimitPerMin)
	assert.False(t, cfg.SeedDemo)
}

func TestMalformedValuesFallBack(t *testing.T) {
	t.Setenv("CLUB_REQUEST_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_PER_MIN", "lots")
	t.Setenv("MOCK_SEED", "maybe")

	cfg := Load()
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 120, cfg.RateLimitPerMin)
	assert.True(t, cfg.SeedDemo)
}
