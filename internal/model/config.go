package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the complete client configuration
type Config struct {
	API         APIConfig         `yaml:"api"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// APIConfig configures the backend connection
type APIConfig struct {
	BaseURL           string        `yaml:"base_url"`            // Backend root, e.g. http://localhost:8000
	Timeout           time.Duration `yaml:"timeout"`             // Per-request timeout
	UserAgent         string        `yaml:"user_agent"`          // HTTP User-Agent
	RequestsPerSecond float64       `yaml:"requests_per_second"` // Client-side rate limit
	Burst             int           `yaml:"burst"`               // Rate limiter burst
}

// CacheConfig configures the in-memory preview cache
type CacheConfig struct {
	PreviewTTL      time.Duration `yaml:"preview_ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// ConcurrencyConfig bounds the client's concurrent backend calls
type ConcurrencyConfig struct {
	CorrectionWorkers int `yaml:"correction_workers"` // Parallel per-sentence correction fetches
	PreviewWorkers    int `yaml:"preview_workers"`    // Parallel preview backfill fetches
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose bool   `yaml:"verbose"`
	LogFile string `yaml:"log_file"` // TUI log sink; empty disables file logging
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           "http://localhost:8000",
			Timeout:           30 * time.Second,
			UserAgent:         "Veritext/0.1 (+https://github.com/veritext/veritext)",
			RequestsPerSecond: 10,
			Burst:             5,
		},
		Cache: CacheConfig{
			PreviewTTL:      30 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			CorrectionWorkers: 8,
			PreviewWorkers:    4,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}

// ConfigDir returns the directory holding the config file, session file and
// log sink, creating nothing. Defaults to ~/.veritext.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".veritext"), nil
}
