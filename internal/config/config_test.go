package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goearth/internal/station"
	"github.com/alexiusacademia/goearth/internal/volume"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goearth.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultPipeline(t *testing.T) {
	pc, err := Default().Pipeline()
	require.NoError(t, err)

	assert.Equal(t, station.Lenient, pc.SlopePolicy)
	assert.Equal(t, volume.EndArea, pc.Rule)
	assert.Equal(t, 75.0, pc.DefaultSlopeAngle)
	assert.Equal(t, 0.5, pc.BaselineCoefficient)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
engine:
  slope_policy: strict
  rule: single-end
  default_slope_angle: 60
logging:
  level: debug
output:
  plot_format: svg
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	pc, err := cfg.Pipeline()
	require.NoError(t, err)
	assert.Equal(t, station.Strict, pc.SlopePolicy)
	assert.Equal(t, volume.SingleEnd, pc.Rule)
	assert.Equal(t, 60.0, pc.DefaultSlopeAngle)
	assert.Equal(t, 0.5, pc.BaselineCoefficient)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "svg", cfg.Output.PlotFormat)
	assert.Equal(t, int32(3), cfg.Output.Decimals)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"policy": "engine:\n  slope_policy: sloppy\n",
		"rule":   "engine:\n  rule: prismoidal\n",
		"angle":  "engine:\n  default_slope_angle: 0\n",
		"yaml":   "engine: [\n",
		"output": "output:\n  decimals: -1\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
