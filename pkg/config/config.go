// Package config provides configuration loading and management.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/user/bitplot/pkg/orchestrator"
	"github.com/user/bitplot/pkg/pipeline"
	"github.com/user/bitplot/pkg/ports"
)

// Config represents the persistent configuration for bitplot. All fields can
// be overridden by command-line flags.
type Config struct {
	// Output
	CanvasWidth  int    `yaml:"canvas_width"`
	CanvasHeight int    `yaml:"canvas_height"`
	PerPixel     bool   `yaml:"per_pixel"`
	FontPath     string `yaml:"font_path"`

	// Decoding
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Summary
	SummaryPath string `yaml:"summary"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		CanvasWidth:  1920,
		CanvasHeight: 1080,
		DebugDir:     "./debug",
		LogLevel:     "info",
	}
}

// Load reads a YAML configuration file and merges it over the defaults.
func Load(path string, fs ports.FileSystem) (Config, error) {
	cfg := Defaults()

	data, err := fs.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ToOrchestratorConfig converts the configuration to an orchestrator.Config
// for the given input and output paths.
func (c Config) ToOrchestratorConfig(inputPath, outputPath string) orchestrator.Config {
	unit := pipeline.UnitRaw
	if c.PerPixel {
		unit = pipeline.UnitPerPixel
	}
	return orchestrator.Config{
		InputPath:    inputPath,
		OutputPath:   outputPath,
		CanvasWidth:  c.CanvasWidth,
		CanvasHeight: c.CanvasHeight,
		Unit:         unit,
		FontPath:     c.FontPath,
	}
}
