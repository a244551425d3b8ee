package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config values from environment variables.
//
// Recognized variables:
//
//	ADDRESS            HTTP bind address
//	DATABASE_DSN       PostgreSQL DSN
//	SESSION_SECRET     token signing/verification key
//	TOKEN_TTL_MINUTES  session token validity, minutes
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SESSION_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_TTL_MINUTES"); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
}
