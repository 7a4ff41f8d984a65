package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/cascade/internal/logging"
	"github.com/aretw0/cascade/pkg/wire"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when --config is not given.
const DefaultPath = "cascade.yaml"

// Config holds the CLI settings.
type Config struct {
	// Mode is the wire dialect used for exports: "soap" or "rest".
	Mode string `yaml:"mode" json:"mode"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`
	// Fixtures is the directory holding payload fixtures.
	Fixtures string `yaml:"fixtures" json:"fixtures"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Mode:     wire.SOAP.String(),
		LogLevel: "info",
		Fixtures: "fixtures",
	}
}

// Load reads a configuration file (YAML or JSON) on top of the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that mode and log level are recognised.
func (c Config) Validate() error {
	if _, err := c.WireMode(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// WireMode parses Mode.
func (c Config) WireMode() (wire.Mode, error) {
	return wire.ParseMode(c.Mode)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}
