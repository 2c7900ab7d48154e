package config

import (
	"github.com/caarlos0/env/v11"

	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
)

// StoreKind selects where the character is saved
type StoreKind string

const (
	StoreSQLite StoreKind = "sqlite"
	StoreRedis  StoreKind = "redis"
	StoreMemory StoreKind = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Store      StoreKind `env:"TRACKER_STORE" envDefault:"sqlite"`
	DBPath     string    `env:"TRACKER_DB_PATH,expand" envDefault:"${HOME}/.dnd-tracker.db"`
	StorageKey string    `env:"TRACKER_STORAGE_KEY" envDefault:"dndTrackerData"`
	LogLevel   string    `env:"TRACKER_LOG_LEVEL" envDefault:"info"`
	Redis      RedisConfig
	DND5E      DND5EConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	BaseURL string `env:"DND5E_API_URL" envDefault:"https://www.dnd5eapi.co/api"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the selected store has what it needs
func (c *Config) Validate() error {
	switch c.Store {
	case StoreSQLite:
		if c.DBPath == "" {
			return dnderr.InvalidArgument("TRACKER_DB_PATH is required for the sqlite store")
		}
	case StoreRedis:
		if c.Redis.URL == "" {
			return dnderr.InvalidArgument("REDIS_URL is required for the redis store")
		}
	case StoreMemory:
	default:
		return dnderr.InvalidArgumentf("unknown store %q", c.Store).
			WithMeta("store", string(c.Store))
	}

	if c.StorageKey == "" {
		return dnderr.InvalidArgument("TRACKER_STORAGE_KEY cannot be empty")
	}

	return nil
}
