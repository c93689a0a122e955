// Package config provides configuration management for the graph server.
//
// Config file locations (priority order):
//  1. $VIPGRAPH_CONFIG
//  2. ./vipgraph.yaml
//  3. $XDG_CONFIG_HOME/vipgraph/config.yaml
//  4. ~/.config/vipgraph/config.yaml
//  5. /etc/vipgraph/config.yaml
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Admin    AdminConfig    `yaml:"admin"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig holds the SQLite settings
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// SessionConfig holds login session settings
type SessionConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// AdminConfig describes the initial superadmin account created at first
// startup. Once the account exists these values are ignored.
type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{Path: "./vipgraph.db"},
		Session:  SessionConfig{TTL: 12 * time.Hour},
		Admin:    AdminConfig{Email: "admin@example.com", Password: "admin"},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./vipgraph.db"
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = 12 * time.Hour
	}
	if c.Admin.Email == "" {
		c.Admin.Email = "admin@example.com"
	}
	if c.Admin.Password == "" {
		c.Admin.Password = "admin"
	}
}
