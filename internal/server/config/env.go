package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables:
//
//	SERVER_ADDRESS               HTTP bind address
//	DATABASE_DSN                 PostgreSQL DSN
//	SECRET_KEY                   JWT HMAC secret
//	ALGORITHM                    JWT signing algorithm name
//	ACCESS_TOKEN_EXPIRE_MINUTES  access token validity, minutes
//
// Unset variables leave the current value untouched. A non-numeric
// ACCESS_TOKEN_EXPIRE_MINUTES is ignored.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("SERVER_ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ALGORITHM"); ok {
		config.SigningAlgorithm = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_EXPIRE_MINUTES"); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
}
