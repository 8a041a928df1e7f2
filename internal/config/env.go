package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings
const (
	EnvBaseURL    = "USERGRIP_BASE_URL"
	EnvDebounceMS = "USERGRIP_DEBOUNCE_MS"
	EnvLogFile    = "USERGRIP_LOG_FILE"
)

// LoadDotEnv reads KEY=VALUE files into the process environment. Variables that
// are already set win. Missing files are skipped; with no arguments ".env" is read.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg from the process environment
func ApplyEnv(cfg *Config) error {
	return ApplyLookup(cfg, os.LookupEnv)
}

// ApplyLookup overrides cfg using lookup in place of the process environment
func ApplyLookup(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		cfg.Search.BaseURL = v
	}
	if v, ok := lookup(EnvDebounceMS); ok && v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvDebounceMS, v, err)
		}
		cfg.Search.DebounceMS = ms
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		cfg.LogFile = v
	}
	return nil
}
