// Package config loads the server configuration file stored at
// ~/.config/blossom/blossom.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bluesmoth12/Blossom/internal/constants"
)

// Config represents the contents of the server config file. Every field
// has a sensible default so a missing file is not an error.
type Config struct {
	// Addr is the host:port the HTTP server listens on.
	Addr string `yaml:"addr"`
	// Timezone is an IANA zone name that calendar days are normalized to.
	Timezone string `yaml:"timezone"`
	// SessionSecret signs session tokens. Generated per process when empty,
	// which invalidates sessions across restarts.
	SessionSecret string `yaml:"session_secret"`
	// SessionTTLHours is how long a login session stays valid.
	SessionTTLHours int    `yaml:"session_ttl_hours"`
	Database        string `yaml:"database"`
	LogDir          string `yaml:"log_dir"`
	Debug           bool   `yaml:"debug"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Addr:            "127.0.0.1:5000",
		Timezone:        constants.DefaultTimezone,
		SessionTTLHours: int(constants.DefaultSessionTTL / time.Hour),
		Database:        ExpandHome(constants.DefaultDatabase),
		LogDir:          filepath.Dir(ExpandHome(constants.DefaultConfigPath)),
	}
}

// Load reads the config from the given path, falling back to defaults
// for the file itself when missing and for any unset field.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ExpandHome(constants.DefaultConfigPath)
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config to the given path, creating parent directories.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = ExpandHome(constants.DefaultConfigPath)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// SessionTTL returns the configured session lifetime.
func (c *Config) SessionTTL() time.Duration {
	if c.SessionTTLHours <= 0 {
		return constants.DefaultSessionTTL
	}
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	name := c.Timezone
	if name == "" {
		name = constants.DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("resolving timezone %q: %w", name, err)
	}
	return loc, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.Timezone == "" {
		c.Timezone = d.Timezone
	}
	if c.SessionTTLHours <= 0 {
		c.SessionTTLHours = d.SessionTTLHours
	}
	if c.Database == "" {
		c.Database = d.Database
	}
	if c.LogDir == "" {
		c.LogDir = d.LogDir
	}
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
