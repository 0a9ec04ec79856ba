// Package config maps environment variables into the runtime configuration
// using caarlos0/env. The API address falls back to the local development
// backend when nothing is set.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// APIURL is the storefront backend address.
	APIURL string `env:"TANKOBON_API_URL" envDefault:"http://localhost:8080"`

	// DataDir holds the local database. Empty means ~/.tankobon.
	DataDir string `env:"TANKOBON_DATA_DIR"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(homeDir, ".tankobon")
	}

	return cfg, nil
}

// DatabasePath is the DuckDB file location under DataDir.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "tankobon.db")
}
