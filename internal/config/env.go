package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envOverrides are the configuration knobs that can be set through the
// environment. Only operational knobs live here: paths and the source URL
// are per-invocation decisions and stay on the CLI.
//
// Variables carry the MATCHDEX_ prefix, e.g. MATCHDEX_TIMEOUT=60s.
type envOverrides struct {
	Timeout     time.Duration `envconfig:"TIMEOUT"`
	UserAgent   string        `envconfig:"USER_AGENT"`
	Concurrency int           `envconfig:"CONCURRENCY"`
	MaxBodySize int64         `envconfig:"MAX_BODY_SIZE"`
	DBDir       string        `envconfig:"DB_DIR"`
}

// ApplyEnv overlays MATCHDEX_* environment variables onto the config.
// A .env file in the working directory is honored if present; a missing
// .env is not an error. Unset variables leave the config untouched, so
// flag values applied afterwards still win.
func ApplyEnv(cfg *Config) error {
	// Best effort; .env is optional.
	_ = godotenv.Load() //nolint:errcheck // Missing .env file is expected

	var env envOverrides
	if err := envconfig.Process(AppName, &env); err != nil {
		return fmt.Errorf("failed to read environment overrides: %w", err)
	}

	if env.Timeout > 0 {
		cfg.Timeout = env.Timeout
	}
	if env.UserAgent != "" {
		cfg.UserAgent = env.UserAgent
	}
	if env.Concurrency > 0 {
		cfg.Concurrency = env.Concurrency
	}
	if env.MaxBodySize > 0 {
		cfg.MaxBodySize = env.MaxBodySize
	}
	if env.DBDir != "" {
		cfg.DBDir = env.DBDir
	}
	return nil
}
