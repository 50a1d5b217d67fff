// Package config reads the optional configuration file of the mbox tools.
package config

import (
	"fmt"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the configuration file content.
type Config struct {
	Daemon DaemonConfig `yaml:"daemon"`
}

// DaemonConfig locates the control endpoint of the mailbox daemon.
type DaemonConfig struct {
	Network   string `yaml:"network"`
	Address   string `yaml:"address"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Reading of config file %s failed: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("Parsing of config file %s failed: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Config file %s is invalid: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the field values.
func (c *Config) Validate() error {
	switch c.Daemon.Network {
	case "", "unix", "tcp":
	default:
		return fmt.Errorf("unsupported network %q", c.Daemon.Network)
	}
	if c.Daemon.TimeoutMs < 0 {
		return fmt.Errorf("negative timeout_ms %d", c.Daemon.TimeoutMs)
	}
	return nil
}

// Timeout returns the configured receive timeout, 0 if unset.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Daemon.TimeoutMs) * time.Millisecond
}
