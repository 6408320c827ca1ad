// Package config maps GIFTCHECK_* environment variables onto a typed
// struct. Command-line flags override whatever is loaded here.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Prefix is prepended to every variable name.
const Prefix = "GIFTCHECK_"

// Config holds runtime defaults for the CLI.
type Config struct {
	// DB is the SQLite database holding an imported catalog and match history.
	DB string `env:"DB"`

	// Catalog is a directory of catalog files. Used when DB is unset.
	Catalog string `env:"CATALOG"`

	Format   string     `env:"FORMAT"    envDefault:"text"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// Load parses the process environment.
func Load() (*Config, error) {
	return LoadFrom(environ())
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{Prefix: Prefix, Environment: vars}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	cfg.Format = strings.ToLower(cfg.Format)
	if cfg.Format != "text" && cfg.Format != "json" {
		return nil, fmt.Errorf("config: %sFORMAT must be text or json, got %q", Prefix, cfg.Format)
	}
	return cfg, nil
}

func environ() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}
