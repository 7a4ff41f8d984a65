package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/cascade/internal/config"
	"github.com/aretw0/cascade/internal/logging"
	"github.com/aretw0/cascade/pkg/wire"
)

// Overrides are the values given on the command line. Empty fields keep the
// configuration file value.
type Overrides struct {
	Mode     string
	LogLevel string
	Fixtures string
}

// Settings is the resolved runtime configuration of a command.
type Settings struct {
	Mode     wire.Mode
	Fixtures string
	Logger   *slog.Logger
}

// LoadSettings reads the configuration file at path and applies the overrides.
func LoadSettings(path string, o Overrides) (*Settings, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if o.Mode != "" {
		cfg.Mode = o.Mode
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.Fixtures != "" {
		cfg.Fixtures = o.Fixtures
	}

	mode, err := cfg.WireMode()
	if err != nil {
		return nil, fmt.Errorf("invalid --mode: %w", err)
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := logging.New(level)
	logger.Debug("settings loaded", "config", path, "mode", mode.String(), "fixtures", cfg.Fixtures)

	return &Settings{
		Mode:     mode,
		Fixtures: cfg.Fixtures,
		Logger:   logger,
	}, nil
}
