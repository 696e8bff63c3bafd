// Package config loads the goearth YAML configuration file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/goearth/internal/logging"
	"github.com/alexiusacademia/goearth/internal/norms"
	"github.com/alexiusacademia/goearth/internal/pipeline"
	"github.com/alexiusacademia/goearth/internal/station"
	"github.com/alexiusacademia/goearth/internal/volume"
)

// Config is the application configuration
type Config struct {
	Engine  EngineConfig   `yaml:"engine"`
	Output  OutputConfig   `yaml:"output"`
	Logging logging.Config `yaml:"logging"`
}

// EngineConfig holds the computation policies
type EngineConfig struct {
	// SlopePolicy is "lenient" or "strict"
	SlopePolicy string `yaml:"slope_policy"`

	// DefaultSlopeAngle replaces a blank cutting slope under the lenient policy
	DefaultSlopeAngle float64 `yaml:"default_slope_angle"`

	// BaselineCoefficient is the area coefficient where h1 = 0
	BaselineCoefficient float64 `yaml:"baseline_coefficient"`

	// Rule is "end-area" or "single-end"
	Rule string `yaml:"rule"`
}

// OutputConfig holds export preferences
type OutputConfig struct {
	// PlotFormat is the image format for cross-section plots (png, svg, pdf)
	PlotFormat string `yaml:"plot_format"`

	// Decimals is the rounding applied to exported areas and volumes
	Decimals int32 `yaml:"decimals"`

	// Workers bounds concurrent plot rendering
	Workers int `yaml:"workers"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Engine: EngineConfig{
			SlopePolicy:         station.Lenient.String(),
			DefaultSlopeAngle:   norms.DefaultSlopeAngle,
			BaselineCoefficient: norms.BaselineCoefficient,
			Rule:                volume.EndArea.String(),
		},
		Output: OutputConfig{
			PlotFormat: "png",
			Decimals:   3,
			Workers:    4,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads a YAML file over the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the engine settings can be turned into a pipeline config
func (c Config) Validate() error {
	_, err := c.Pipeline()
	if err != nil {
		return err
	}
	if c.Output.Decimals < 0 {
		return fmt.Errorf("output.decimals must not be negative")
	}
	return nil
}

// ParseSlopePolicy reads "strict" or "lenient"
func ParseSlopePolicy(s string) (station.SlopePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lenient":
		return station.Lenient, nil
	case "strict":
		return station.Strict, nil
	default:
		return station.Lenient, fmt.Errorf("unknown slope policy %q (want strict or lenient)", s)
	}
}

// Pipeline converts the engine section into a pipeline.Config
func (c Config) Pipeline() (pipeline.Config, error) {
	pc := pipeline.DefaultConfig()

	policy, err := ParseSlopePolicy(c.Engine.SlopePolicy)
	if err != nil {
		return pc, err
	}
	rule, err := volume.ParseRule(c.Engine.Rule)
	if err != nil {
		return pc, err
	}
	if c.Engine.DefaultSlopeAngle <= 0 || c.Engine.DefaultSlopeAngle >= 180 {
		return pc, fmt.Errorf("engine.default_slope_angle %g must be between 0 and 180", c.Engine.DefaultSlopeAngle)
	}

	pc.SlopePolicy = policy
	pc.Rule = rule
	pc.DefaultSlopeAngle = c.Engine.DefaultSlopeAngle
	pc.BaselineCoefficient = c.Engine.BaselineCoefficient
	return pc, nil
}
