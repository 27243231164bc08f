package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("ADDRESS", ":9999")
	t.Setenv("TOKEN_SECRET", "env-secret")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("TOKEN_VALIDITY_MINUTES", "15")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":9999", c.EndpointAddr)
	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, 5, c.RateLimitPerMinute)
	assert.Equal(t, 15*time.Minute, c.TokenValidityDuration)
	// untouched by env
	assert.Equal(t, "notekeeper.db", c.DatabaseDSN)
}

func TestParseEnv_InvalidIntPanics(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")

	var c Config
	c.LoadDefaults()

	assert.Panics(t, func() { parseEnv(&c) })
}
