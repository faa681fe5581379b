package config

import "time"

// Config holds runtime settings for the styleoracle CLI.
//
// Fields:
//   - APIBaseURL: base origin of the backend HTTP API.
//   - RequestTimeout: upper bound for a single API call; screens derive
//     their per-action contexts from it.
//   - DatabasePath: location of the local sqlite database holding the
//     persisted session.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "styleoracle.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
