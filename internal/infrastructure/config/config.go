package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SeedDemoData controls first-run seeding of the demo user and
	// products. Seeding is idempotent either way.
	SeedDemoData bool `env:"SEED_DEMO_DATA, default=true"`

	Store StoreConfig
}

type StoreConfig struct {
	Dir        string `env:"DATA_DIR,          default=./data"`
	InMemory   bool   `env:"STORE_IN_MEMORY,   default=false"`
	SyncWrites bool   `env:"STORE_SYNC_WRITES, default=true"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
