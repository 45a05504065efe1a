// Package config handles ncdeviced configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// searchPathsFunc is overridden in tests to avoid finding real config
// files on developer/deploy machines.
var searchPathsFunc = DefaultSearchPaths

// DefaultSearchPaths returns the config file search order.
// An explicit path (from -config flag) is checked first.
// Then: ./config.yaml, ~/.config/ncdevice/config.yaml,
// /config/config.yaml (container convention), /etc/ncdevice/config.yaml.
func DefaultSearchPaths() []string {
	paths := []string{"config.yaml"}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ncdevice", "config.yaml"))
	}

	paths = append(paths, "/config/config.yaml")
	paths = append(paths, "/etc/ncdevice/config.yaml")
	return paths
}

// FindConfig locates a config file. If explicit is non-empty, it must exist.
// Otherwise, searches the default search path and returns the first that
// exists. Returns the path found, or an error if nothing was found.
func FindConfig(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	paths := searchPathsFunc()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("no config file found (searched: %v)", paths)
}

// Config holds all ncdeviced configuration, covering the configuration
// surface enumerated for the control-protocol device endpoint: listen
// address, node/device identity, DeviceManager metadata, and the IS-04
// façade's version timestamp offset.
type Config struct {
	Listen         ListenConfig `yaml:"listen"`
	NodeID         string       `yaml:"node_id"`
	DeviceID       string       `yaml:"device_id"`
	Manufacturer   string       `yaml:"manufacturer"`
	Product        string       `yaml:"product"`
	SerialNumber   string       `yaml:"serial_number"`
	TAIOffsetSec   int          `yaml:"tai_offset_seconds"`
	LogLevel       string       `yaml:"log_level"`
}

// ListenConfig defines the WebSocket and REST listener settings. The
// /ws control endpoint listens on Port; the IS-04 façade listens on the
// same Address at Port+1.
type ListenConfig struct {
	Address string `yaml:"address"` // Bind address (default: "" = all interfaces)
	Port    int    `yaml:"port"`
}

// Load reads configuration from a YAML file, expands environment
// variables, applies defaults for the fields applyDefaults covers, and
// validates the result. Fields without a default (node_id, device_id,
// serial_number, log_level, listen.address) may still be empty.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${NODE_ID}). Convenience for
	// container deployments; putting values directly in the file also
	// works.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills in zero-value Listen.Port, Manufacturer, Product,
// and TAIOffsetSec with sensible defaults. Called automatically by
// Load. Other fields are left as loaded.
func (c *Config) applyDefaults() {
	if c.Listen.Port == 0 {
		c.Listen.Port = 8080
	}
	if c.Manufacturer == "" {
		c.Manufacturer = "Example Manufacturer"
	}
	if c.Product == "" {
		c.Product = "ncdevice"
	}
	if c.TAIOffsetSec == 0 {
		c.TAIOffsetSec = 37
	}
}

// Validate checks that the configuration is internally consistent. It
// runs after applyDefaults, so it can assume defaults are populated.
// Returns an error describing the first problem found, or nil.
func (c *Config) Validate() error {
	if c.Listen.Port < 1 || c.Listen.Port > 65535 {
		return fmt.Errorf("listen.port %d out of range (1-65535)", c.Listen.Port)
	}
	if c.LogLevel != "" {
		if _, err := ParseLogLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}

// Default returns a default configuration suitable for local
// development. All defaults are already applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
