package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envSettings is a DTO for environment variables. No defaults here: a zero
// value means "not set" and leaves the current Config value untouched.
type envSettings struct {
	APIBaseURL     string        `envconfig:"STYLEORACLE_API_URL"`
	RequestTimeout time.Duration `envconfig:"STYLEORACLE_REQUEST_TIMEOUT"`
	DatabasePath   string        `envconfig:"STYLEORACLE_DB_PATH"`
}

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present (silent skip if not).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var es envSettings
	if err := envconfig.Process("", &es); err != nil {
		return
	}

	if es.APIBaseURL != "" {
		cfg.APIBaseURL = es.APIBaseURL
	}
	if es.RequestTimeout != 0 {
		cfg.RequestTimeout = es.RequestTimeout
	}
	if es.DatabasePath != "" {
		cfg.DatabasePath = es.DatabasePath
	}
}
