package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	body := `{
		"endpoint_addr": ":8081",
		"secret_key": "json-secret",
		"token_validity_duration": "30m",
		"rate_limit_per_minute": 10,
		"rate_limit_window": "10s"
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"app", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":8081", c.EndpointAddr)
	assert.Equal(t, "json-secret", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.TokenValidityDuration)
	assert.Equal(t, 10, c.RateLimitPerMinute)
	assert.Equal(t, 10*time.Second, c.RateLimitWindow)
	// absent from the file, default preserved
	assert.Equal(t, "notekeeper.db", c.DatabaseDSN)
}

func TestParseJson_NoFileFlag(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"app"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":8000", c.EndpointAddr)
}
