package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables:
//
//	ADDRESS                 HTTP bind address
//	DATABASE_DSN            PostgreSQL DSN or SQLite file path
//	TOKEN_SECRET            JWT signing secret
//	TOKEN_VALIDITY_MINUTES  session token lifetime, minutes
//	RATE_LIMIT_PER_MINUTE   requests admitted per client per window
//
// Unset variables leave the corresponding field untouched.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("TOKEN_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY_MINUTES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("invalid integer for TOKEN_VALIDITY_MINUTES: %w", err))
		}
		config.TokenValidityDuration = time.Duration(n) * time.Minute
	}
	if v, ok := os.LookupEnv("RATE_LIMIT_PER_MINUTE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("invalid integer for RATE_LIMIT_PER_MINUTE: %w", err))
		}
		config.RateLimitPerMinute = n
	}
}
