// Package config handles ornament configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/ornament/internal/ornament"
)

// Config holds all application settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Logging   LoggingConfig   `yaml:"logging"`
	Ornaments []OrnamentEntry `yaml:"ornaments"`

	// Non-fatal problems found while loading (skipped legacy lines, a
	// missing explicit config file). Collected here because the logger is
	// not initialized until after Load; the app reports them at startup.
	warnings []error
}

// Warnings returns the non-fatal problems encountered during Load.
func (c *Config) Warnings() []error {
	return c.warnings
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`
	Brightness float32 `yaml:"brightness"`
	Thickness  float32 `yaml:"thickness"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// OrnamentEntry is one declarative ornament as it appears in the config
// file: shape, color and position by name, monitor by index.
type OrnamentEntry struct {
	Shape    string `yaml:"shape"`
	Color    string `yaml:"color"`
	Position string `yaml:"position"`
	Screen   int    `yaml:"screen"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			VSync:      true,
			FPSLimit:   0,
			Brightness: 1.0,
			Thickness:  2.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Entries validates and converts the configured ornament list. Invalid
// entries are dropped and reported in the returned slice of errors; if
// nothing valid remains, a single default ornament is returned so the
// process always has something to draw.
func (c *Config) Entries() ([]ornament.Config, []error) {
	var (
		out  []ornament.Config
		errs []error
	)
	for i, e := range c.Ornaments {
		parsed, err := e.parse()
		if err != nil {
			errs = append(errs, fmt.Errorf("ornament %d: %w", i, err))
			continue
		}
		out = append(out, parsed)
	}
	if len(out) == 0 {
		out = append(out, ornament.DefaultConfig())
	}
	return out, errs
}

func (e OrnamentEntry) parse() (ornament.Config, error) {
	shape, err := ornament.ParseShape(e.Shape)
	if err != nil {
		return ornament.Config{}, err
	}
	color, err := ornament.ParseColor(e.Color)
	if err != nil {
		return ornament.Config{}, err
	}
	anchor, err := ornament.ParseAnchor(e.Position)
	if err != nil {
		return ornament.Config{}, err
	}
	return ornament.Config{
		Shape:  shape,
		Color:  color,
		Anchor: anchor,
		Screen: e.Screen,
	}, nil
}
