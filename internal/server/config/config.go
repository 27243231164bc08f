// Package config handles configuration for the server, including defaults,
// JSON overlay, environment variables, and command-line flags.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the NoteKeeper server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: either a PostgreSQL DSN (pgx) or a SQLite file path.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: session token lifetime.
//   - RateLimitPerMinute: requests admitted per client per window.
//   - RateLimitWindow: length of the rate-limiting window.
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	RateLimitPerMinute    int
	RateLimitWindow       time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.DatabaseDSN = "notekeeper.db"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.RateLimitPerMinute = 60
	c.RateLimitWindow = time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags,
// in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// String renders the config with the secret masked, safe for logging.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Addr: %s, DSN: %s, Secret: ***, TokenValidity: %s, RateLimit: %d/%s}",
		c.EndpointAddr, c.DatabaseDSN, c.TokenValidityDuration, c.RateLimitPerMinute, c.RateLimitWindow)
}
