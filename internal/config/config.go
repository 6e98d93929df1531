// Package config loads prodsched settings from config.toml and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/prodsched/internal/layout"
	"github.com/alexanderramin/prodsched/internal/workbook"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file looked up beside the executable.
const FileName = "config.toml"

// AppConfig holds all prodsched configuration.
type AppConfig struct {
	Source    SourceConfig  `toml:"source"`
	Layout    layout.Config `toml:"layout"`
	Store     StoreConfig   `toml:"store"`
	Server    ServerConfig  `toml:"server"`
	LogParses bool          `toml:"log_parses"`
}

// SourceConfig locates the workbook and tunes how it is read.
type SourceConfig struct {
	// Path is the primary workbook location.
	Path string `toml:"path"`
	// FallbackPath is relative to the installation root.
	FallbackPath string `toml:"fallback_path"`
	// YearHint anchors header dates; 0 means the current year.
	YearHint  int `toml:"year_hint"`
	Attempts  int `toml:"attempts"`
	BackoffMs int `toml:"backoff_ms"`
}

// StoreConfig configures the ingest history database. An empty DBPath
// disables the history store.
type StoreConfig struct {
	DBPath string `toml:"db_path"`
}

// ServerConfig configures the HTTP boundary.
type ServerConfig struct {
	Listen string `toml:"listen"`
}

// DefaultConfig returns an AppConfig with sensible defaults. The history
// store lives under the user's home directory; without one DBPath is empty.
func DefaultConfig() *AppConfig {
	cfg := &AppConfig{
		Source: SourceConfig{
			Path:         "schedule.xlsx",
			FallbackPath: filepath.Join("data", "schedule.xlsx"),
			Attempts:     3,
			BackoffMs:    250,
		},
		Layout: layout.DefaultConfig(),
		Server: ServerConfig{
			Listen: "127.0.0.1:8470",
		},
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.Store.DBPath = filepath.Join(home, ".prodsched", "prodsched.db")
	}
	return cfg
}

// Backoff returns the retry delay as a duration.
func (c *AppConfig) Backoff() time.Duration {
	return time.Duration(c.Source.BackoffMs) * time.Millisecond
}

// Path returns the config file location: $PRODSCHED_CONFIG if set, else
// config.toml beside the executable.
func Path() string {
	if v := os.Getenv("PRODSCHED_CONFIG"); v != "" {
		return v
	}
	dir, err := workbook.ExeDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, FileName)
}

// Load reads Path() and applies environment overrides.
func Load() (*AppConfig, error) {
	return LoadFile(Path())
}

// LoadFile reads the TOML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func LoadFile(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		// Blocks are replaced wholesale when the file declares a layout.
		if hasBlocks(data) {
			cfg.Layout.Blocks = nil
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Source.Attempts < 1 {
		cfg.Source.Attempts = 1
	}
	if cfg.Source.BackoffMs < 0 {
		cfg.Source.BackoffMs = 0
	}
	return cfg, nil
}

func hasBlocks(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}
	l, ok := raw["layout"].(map[string]any)
	if !ok {
		return false
	}
	_, ok = l["blocks"]
	return ok
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv("PRODSCHED_WORKBOOK"); v != "" {
		cfg.Source.Path = v
	}
	if v := os.Getenv("PRODSCHED_SHEET"); v != "" {
		cfg.Layout.Sheet = v
	}
	if v := os.Getenv("PRODSCHED_YEAR"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("PRODSCHED_YEAR: invalid year %q", v)
		}
		cfg.Source.YearHint = n
	}
	if v := os.Getenv("PRODSCHED_DB"); v != "" {
		cfg.Store.DBPath = v
	}
	if v := os.Getenv("PRODSCHED_LISTEN"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("PRODSCHED_LOG_PARSES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PRODSCHED_LOG_PARSES: %w", err)
		}
		cfg.LogParses = b
	}
	return nil
}
