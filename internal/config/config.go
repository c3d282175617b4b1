// Package config provides the tunable parameters for the visibility engine.
// Parameters are loaded from a YAML file so constants never have to be edited
// in code; malformed values are rejected at startup.
package config

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Render mode names accepted by Config.RenderMode.
const (
	// ModeMarch draws each ray as per-step samples with exponential
	// distance attenuation. This is the default.
	ModeMarch = "march"
	// ModeLine draws each ray as one vector line at a single alpha.
	ModeLine = "line"
)

// Config holds all engine parameters.
type Config struct {
	// Surface dimensions in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// AngleStepDeg is the angular spacing between consecutive rays, in
	// degrees. It must be positive and divide evenly into 360.
	AngleStepDeg float64 `yaml:"angle_step_deg"`

	// DecayK is the exponential attenuation constant: opacity at distance
	// d is exp(-DecayK * d).
	DecayK float64 `yaml:"decay_k"`

	// StepSize is the march increment along a ray, in distance units.
	StepSize float64 `yaml:"step_size"`

	// MaxRayLength bounds the march for rays that hit nothing.
	MaxRayLength float64 `yaml:"max_ray_length"`

	// RayColor and WallColor are hex "RRGGBB" strings.
	RayColor  string `yaml:"ray_color"`
	WallColor string `yaml:"wall_color"`

	// RenderMode selects the ray drawing strategy: "march" or "line".
	RenderMode string `yaml:"render_mode"`
}

// Default returns the engine defaults, matching the classic demo setup.
func Default() *Config {
	return &Config{
		Width:        800,
		Height:       600,
		AngleStepDeg: 0.05,
		DecayK:       0.005,
		StepSize:     1.0,
		MaxRayLength: 1200,
		RayColor:     "ffff66",
		WallColor:    "ffffff",
		RenderMode:   ModeMarch,
	}
}

// Load reads configuration from a YAML file, starting from defaults so a
// partial file only overrides what it names. A missing file yields defaults.
// The returned config is already validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects parameter combinations that would make the sampling loop
// or the attenuation march undefined.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid surface dimensions: %dx%d", c.Width, c.Height)
	}
	if c.AngleStepDeg <= 0 {
		return fmt.Errorf("angular step must be positive, got %g", c.AngleStepDeg)
	}
	if rays := 360.0 / c.AngleStepDeg; math.Abs(rays-math.Round(rays)) > 1e-9 {
		return fmt.Errorf("angular step %g does not divide evenly into 360", c.AngleStepDeg)
	}
	if c.DecayK <= 0 {
		return fmt.Errorf("decay constant must be positive, got %g", c.DecayK)
	}
	if c.StepSize <= 0 {
		return fmt.Errorf("march step size must be positive, got %g", c.StepSize)
	}
	if c.MaxRayLength <= 0 {
		return fmt.Errorf("max ray length must be positive, got %g", c.MaxRayLength)
	}
	if c.RenderMode != ModeMarch && c.RenderMode != ModeLine {
		return fmt.Errorf("unknown render mode %q", c.RenderMode)
	}
	if _, err := ParseHexColor(c.RayColor); err != nil {
		return fmt.Errorf("invalid ray color: %w", err)
	}
	if _, err := ParseHexColor(c.WallColor); err != nil {
		return fmt.Errorf("invalid wall color: %w", err)
	}
	return nil
}

// NumRays returns the number of sampled directions for one full turn.
// Validation guarantees the step divides 360 evenly, so rounding recovers
// the exact count despite binary representation of the step.
func (c *Config) NumRays() int {
	return int(math.Round(360.0 / c.AngleStepDeg))
}

// RayRGBA returns the parsed ray color. Call Validate first.
func (c *Config) RayRGBA() color.RGBA {
	clr, _ := ParseHexColor(c.RayColor)
	return clr
}

// WallRGBA returns the parsed wall color. Call Validate first.
func (c *Config) WallRGBA() color.RGBA {
	clr, _ := ParseHexColor(c.WallColor)
	return clr
}

// ParseHexColor parses an "RRGGBB" hex string into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("expected RRGGBB hex string, got %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("expected RRGGBB hex string, got %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
