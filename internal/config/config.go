// Package config loads middlemath configuration. Values come from built-in
// defaults, then an optional YAML file, then environment variables with the
// MIDDLEMATH_ prefix. Command-line flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/middlemath/internal/store"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Practice PracticeConfig `yaml:"practice"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// DatabaseConfig holds practice log settings.
type DatabaseConfig struct {
	Path string `yaml:"path"` // empty = store.DefaultDBPath
}

// ResolvePath returns the database path, creating its parent directory.
func (d DatabaseConfig) ResolvePath() (string, error) {
	if d.Path == "" {
		return store.DefaultDBPath()
	}
	return d.Path, store.EnsureDir(d.Path)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return lvl, nil
}

// PracticeConfig holds practice session defaults.
type PracticeConfig struct {
	Count int `yaml:"count"` // problems per session, 0 = endless
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Practice: PracticeConfig{
			Count: 10,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/middlemath/config.yaml, falling back
// to ~/.config/middlemath/config.yaml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "middlemath", "config.yaml")
}

// Load builds the configuration. An explicit path must exist; when path is
// empty the default path is read if present.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if err := cfg.mergeFile(path, explicit); err != nil {
		return nil, err
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Host = envStr("MIDDLEMATH_SERVER_HOST", c.Server.Host)
	c.Server.Port = envInt("MIDDLEMATH_SERVER_PORT", c.Server.Port)
	c.Database.Path = envStr("MIDDLEMATH_DB", c.Database.Path)
	c.Log.Level = envStr("MIDDLEMATH_LOG_LEVEL", c.Log.Level)
	c.Log.Format = envStr("MIDDLEMATH_LOG_FORMAT", c.Log.Format)
	c.Practice.Count = envInt("MIDDLEMATH_PRACTICE_COUNT", c.Practice.Count)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log format must be 'text' or 'json', got %q", c.Log.Format)
	}
	if c.Practice.Count < 0 {
		return fmt.Errorf("practice count must not be negative, got %d", c.Practice.Count)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}
