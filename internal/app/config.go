package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// RedisAddr enables the snapshot store and event fan-out when set.
	// Empty means in-memory snapshots and log-only events.
	RedisAddr string `envconfig:"REDIS_ADDR" default:""`

	// SnapshotOnShutdown saves every workspace before the process exits.
	SnapshotOnShutdown bool `envconfig:"SNAPSHOT_ON_SHUTDOWN" default:"true"`

	// RestoreOnStart loads saved workspace state at boot when available.
	RestoreOnStart bool `envconfig:"RESTORE_ON_START" default:"true"`

	// NumberSeed fixes the ERP number range draw for reproducible runs.
	// Zero seeds from the clock.
	NumberSeed int64 `envconfig:"NUMBER_SEED" default:"0"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
