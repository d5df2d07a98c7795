// Package config loads bill tracker settings from defaults, an optional TOML
// file, a .env file and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all bill tracker configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Log       LogConfig       `toml:"log"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Dashboard DashboardConfig `toml:"dashboard"`

	location *time.Location
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `toml:"port"`
	APIPrefix       string        `toml:"api_prefix"`
	GinMode         string        `toml:"gin_mode"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

// DatabaseConfig holds storage settings.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "text" (tint) or "json"
}

// RateLimitConfig holds per-client API rate limits.
type RateLimitConfig struct {
	RPS   float64 `toml:"rps"` // zero disables limiting
	Burst int     `toml:"burst"`
}

// DashboardConfig holds date and summary settings.
type DashboardConfig struct {
	HorizonDays int    `toml:"horizon_days"`
	Timezone    string `toml:"timezone"` // IANA name; empty means the host's local zone
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			APIPrefix:       "/api",
			GinMode:         "release",
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Path: "./data/bills.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		RateLimit: RateLimitConfig{
			RPS:   10,
			Burst: 20,
		},
		Dashboard: DashboardConfig{
			HorizonDays: 7,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "billtracker")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "billtracker")
}

// ConfigPath returns the config file path, honoring BILLTRACKER_CONFIG.
func ConfigPath() string {
	if p := os.Getenv("BILLTRACKER_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load builds the configuration. A missing config file or .env file is not
// an error.
func Load() (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if err := loadFile(ConfigPath(), &cfg); err != nil {
		return nil, err
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = n
		return nil
	}

	if err := num("PORT", &cfg.Server.Port); err != nil {
		return err
	}
	str("API_PREFIX", &cfg.Server.APIPrefix)
	str("GIN_MODE", &cfg.Server.GinMode)
	if v, ok := lookup("SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.Server.ShutdownTimeout = d
	}

	str("DB_PATH", &cfg.Database.Path)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)

	if v, ok := lookup("RATE_LIMIT_RPS"); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
		}
		cfg.RateLimit.RPS = rps
	}
	if err := num("RATE_LIMIT_BURST", &cfg.RateLimit.Burst); err != nil {
		return err
	}

	if err := num("UPCOMING_HORIZON_DAYS", &cfg.Dashboard.HorizonDays); err != nil {
		return err
	}
	str("TIMEZONE", &cfg.Dashboard.Timezone)

	return nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Server.APIPrefix != "" && !strings.HasPrefix(c.Server.APIPrefix, "/") {
		c.Server.APIPrefix = "/" + c.Server.APIPrefix
	}
	c.Server.APIPrefix = strings.TrimRight(c.Server.APIPrefix, "/")

	if c.Dashboard.HorizonDays < 0 {
		return fmt.Errorf("invalid horizon_days %d", c.Dashboard.HorizonDays)
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("invalid rate limit %g/%d", c.RateLimit.RPS, c.RateLimit.Burst)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}

	c.location = time.Local
	if c.Dashboard.Timezone != "" {
		loc, err := time.LoadLocation(c.Dashboard.Timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone: %w", err)
		}
		c.location = loc
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// Location is where "today" is evaluated.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// Now returns the current time in the configured location.
func (c *Config) Now() time.Time {
	return time.Now().In(c.Location())
}
