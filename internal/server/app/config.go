package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer   string // Issuer claim for session tokens
	Audience string // Audience claim for session tokens

	SigningKeyFile string        // Path to the HMAC signing key file (generated if missing)
	TokenDuration  time.Duration // Session token lifetime
	DatabaseFile   string        // Path to SQLite database file (default: ./edusupport.db)
	PepperFile     string        // Path to file containing pepper for password hashing (default: ./pepper)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              getEnvOrDefault("AUTH_ISSUER", "edusupport"),
		Audience:            getEnvOrDefault("AUTH_AUDIENCE", "edusupport-web"),
		SigningKeyFile:      getEnvOrDefault("AUTH_SIGNING_KEY_FILE", "signing.key"),
		TokenDuration:       getEnvDurationOrDefault("AUTH_TOKEN_DURATION_MIN", 60*time.Minute),
		DatabaseFile:        getEnvOrDefault("AUTH_DATABASE_FILE", "edusupport.db"),
		PepperFile:          getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.TokenDuration <= 0 {
		cfg.TokenDuration = 60 * time.Minute
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
