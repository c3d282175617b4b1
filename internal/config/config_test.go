package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, ModeMarch, cfg.RenderMode)
}

func TestNumRays(t *testing.T) {
	cases := []struct {
		step float64
		want int
	}{
		{0.05, 7200},
		{0.1, 3600},
		{1, 360},
		{90, 4},
	}
	for _, tc := range cases {
		cfg := Default()
		cfg.AngleStepDeg = tc.step
		require.NoError(t, cfg.Validate())
		assert.Equal(t, tc.want, cfg.NumRays(), "step %g", tc.step)
	}
}

func TestValidateRejectsBadAngularStep(t *testing.T) {
	for _, step := range []float64{0, -0.1, 0.07, 7} {
		cfg := Default()
		cfg.AngleStepDeg = step
		assert.Error(t, cfg.Validate(), "step %g must be rejected", step)
	}
}

func TestValidateRejectsBadParameters(t *testing.T) {
	mutations := map[string]func(*Config){
		"zero width":       func(c *Config) { c.Width = 0 },
		"negative height":  func(c *Config) { c.Height = -1 },
		"zero decay":       func(c *Config) { c.DecayK = 0 },
		"negative decay":   func(c *Config) { c.DecayK = -0.005 },
		"zero step size":   func(c *Config) { c.StepSize = 0 },
		"zero max length":  func(c *Config) { c.MaxRayLength = 0 },
		"unknown mode":     func(c *Config) { c.RenderMode = "splines" },
		"bad ray color":    func(c *Config) { c.RayColor = "notahex" },
		"short wall color": func(c *Config) { c.WallColor = "fff" },
	}
	for name, mutate := range mutations {
		cfg := Default()
		mutate(cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.yaml")
	doc := "width: 1024\nheight: 768\nangle_step_deg: 0.1\ndecay_k: 0.008\nrender_mode: line\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 768, cfg.Height)
	assert.Equal(t, 0.1, cfg.AngleStepDeg)
	assert.Equal(t, 0.008, cfg.DecayK)
	assert.Equal(t, ModeLine, cfg.RenderMode)
	// Unnamed fields keep their defaults.
	assert.Equal(t, Default().RayColor, cfg.RayColor)
	assert.Equal(t, Default().StepSize, cfg.StepSize)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("angle_step_deg: -5\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	clr, err := ParseHexColor("ffff66")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 102, A: 255}, clr)

	clr, err = ParseHexColor("000000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{A: 255}, clr)

	_, err = ParseHexColor("ggg000")
	assert.Error(t, err)
	_, err = ParseHexColor("ffffff00")
	assert.Error(t, err)
}

func TestColorAccessors(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 102, A: 255}, cfg.RayRGBA())
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, cfg.WallRGBA())
}
