// Package config loads dashboard settings from defaults, a TOML file and
// DASHBOARD_* environment variables. Command-line flags are applied on top
// by the cli package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults.
const (
	DefaultDataDir          = "data"
	DefaultStore            = StoreFile
	DefaultSnapshotKey      = "mantovan-checklist"
	DefaultTheme            = "classic"
	DefaultLogLevel         = "info"
	DefaultCelebrationDelay = 3 * time.Second

	configFileName = "dashboard.toml"
)

// Durable store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config is the resolved runtime configuration.
type Config struct {
	DataDir     string `toml:"data_dir"`
	StateDir    string `toml:"state_dir"`
	Store       string `toml:"store"`
	SnapshotKey string `toml:"snapshot_key"`
	Theme       string `toml:"theme"`
	LogLevel    string `toml:"log_level"`
	Watch       bool   `toml:"watch"`

	// CelebrationDelay is written as a Go duration string ("3s").
	CelebrationDelay Duration `toml:"celebration_delay"`

	// Path of the file the values came from, empty when none was found.
	Source string `toml:"-"`
}

// Duration decodes TOML strings like "3s" or "1500ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return fmt.Errorf("duration %q: %w", string(b), err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a config with every field set to its default.
func Default() *Config {
	return &Config{
		DataDir:          DefaultDataDir,
		StateDir:         defaultStateDir(),
		Store:            DefaultStore,
		SnapshotKey:      DefaultSnapshotKey,
		Theme:            DefaultTheme,
		LogLevel:         DefaultLogLevel,
		CelebrationDelay: Duration{DefaultCelebrationDelay},
	}
}

// Load resolves configuration in priority order:
// 1. Defaults
// 2. Config file (explicit path, else dashboard.toml / .dashboard.toml in
// the working directory, else ~/.dashboard/dashboard.toml)
// 3. Environment variables
// Callers apply their own overrides and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	file := path
	if file == "" {
		file = findConfigFile()
	} else if _, err := os.Stat(file); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if file != "" {
		if _, err := toml.DecodeFile(file, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", file, err)
		}
		cfg.Source = file
	}

	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values no component can act on.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("store: unknown backend %q (want %s or %s)", c.Store, StoreFile, StoreSQLite)
	}
	if strings.TrimSpace(c.SnapshotKey) == "" {
		return fmt.Errorf("snapshot_key: empty")
	}
	if c.CelebrationDelay.Duration < 0 {
		return fmt.Errorf("celebration_delay: negative")
	}
	return nil
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("DASHBOARD_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("DASHBOARD_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv("DASHBOARD_STORE"); v != "" {
		cfg.Store = strings.ToLower(v)
	}
	if v := os.Getenv("DASHBOARD_SNAPSHOT_KEY"); v != "" {
		cfg.SnapshotKey = v
	}
	if v := os.Getenv("DASHBOARD_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("DASHBOARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DASHBOARD_WATCH"); v != "" {
		cfg.Watch = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("DASHBOARD_CELEBRATION_DELAY"); v != "" {
		if err := cfg.CelebrationDelay.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("DASHBOARD_CELEBRATION_DELAY: %w", err)
		}
	}
	return nil
}

func findConfigFile() string {
	for _, name := range []string{configFileName, "." + configFileName} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	if dir := defaultStateDir(); dir != "" {
		p := filepath.Join(dir, configFileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// defaultStateDir is ~/.dashboard, or .dashboard in the working
// directory when the home directory is unknown.
func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".dashboard"
	}
	return filepath.Join(home, ".dashboard")
}
