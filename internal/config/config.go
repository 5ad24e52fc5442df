// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/eclipsereads/eclipse/internal/nav"
	"github.com/eclipsereads/eclipse/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Catalog CatalogConfig `toml:"catalog"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme          string `toml:"theme"`           // "eclipse", "mocha", "latte"
	StartScreen    string `toml:"start_screen"`    // e.g., "onboarding", "home"
	FeaturedRotate string `toml:"featured_rotate"` // e.g., "30s"; empty or "0" disables
}

// CatalogConfig holds catalog source settings.
type CatalogConfig struct {
	DBPath string `toml:"db_path"` // Empty uses the built-in catalog
}

// ErrInvalidRotate is returned when featured_rotate is not a non-negative duration.
var ErrInvalidRotate = errors.New("featured_rotate must be a non-negative duration like 30s")

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:       "eclipse",
			StartScreen: string(nav.ScreenOnboarding),
		},
	}
}

// DefaultDBPath returns where `catalog seed` writes when no path is given.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "eclipse.db"
	}
	return filepath.Join(home, ".local", "share", "eclipse", "catalog.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "eclipse", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Catalog.DBPath = expandPath(cfg.Catalog.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ECLIPSE_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("ECLIPSE_START_SCREEN"); v != "" {
		cfg.UI.StartScreen = v
	}
	if v := os.Getenv("ECLIPSE_FEATURED_ROTATE"); v != "" {
		cfg.UI.FeaturedRotate = v
	}
	if v := os.Getenv("ECLIPSE_CATALOG_DB"); v != "" {
		cfg.Catalog.DBPath = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	if !nav.IsRoute(nav.ScreenID(c.UI.StartScreen)) {
		return fmt.Errorf("start_screen %q is not a screen", c.UI.StartScreen)
	}
	if _, err := c.RotateInterval(); err != nil {
		return err
	}
	return nil
}

// RotateInterval returns how often featured rotations are resampled.
// Zero means never.
func (c *Config) RotateInterval() (time.Duration, error) {
	if c.UI.FeaturedRotate == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.UI.FeaturedRotate)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidRotate, c.UI.FeaturedRotate)
	}
	return d, nil
}

// StartScreen returns the configured first screen.
func (c *Config) StartScreen() nav.ScreenID {
	return nav.ScreenID(c.UI.StartScreen)
}

// UsesBuiltinCatalog reports whether no catalog database is configured.
func (c *Config) UsesBuiltinCatalog() bool {
	return c.Catalog.DBPath == ""
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
