package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terrace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 16, cfg.Terrain.RegionSize)
	require.Equal(t, 512.0, cfg.RootSize())
	require.Equal(t, 50.0, cfg.Noise.Scale)
	require.Equal(t, 6, cfg.Noise.Octaves)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
terrain:
  regionSize: 8
noise:
  seed: 42
  offset: {x: 1, y: 2, z: 3}
streaming:
  renderDistance: 20
  policy: branch
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Terrain.RegionSize)
	require.Equal(t, int64(42), cfg.Noise.Seed)
	require.Equal(t, 3.0, cfg.Noise.Offset.Z)
	require.Equal(t, 32, cfg.Streaming.RenderDistance)
	require.Equal(t, "branch", cfg.Streaming.Policy)
	require.Equal(t, "debug", cfg.Log.Level)

	// Untouched settings keep their defaults.
	require.Equal(t, 6, cfg.Noise.Octaves)
	require.Equal(t, 5, cfg.Streaming.OctreeDepth)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "terrain: [1, 2"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "terrain:\n  regionSize: 7\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"odd region size", func(c *Config) { c.Terrain.RegionSize = 15 }, "terrain.regionSize"},
		{"zero noise scale", func(c *Config) { c.Noise.Scale = 0 }, "noise.scale"},
		{"no octaves", func(c *Config) { c.Noise.Octaves = 0 }, "noise.octaves"},
		{"negative depth", func(c *Config) { c.Streaming.OctreeDepth = -1 }, "streaming.octreeDepth"},
		{"render distance", func(c *Config) { c.Streaming.RenderDistance = 24 }, "streaming.renderDistance"},
		{"negative threshold", func(c *Config) { c.Streaming.ViewerMoveThreshold = -1 }, "streaming.viewerMoveThreshold"},
		{"empty batches", func(c *Config) { c.Streaming.BatchSize = 0 }, "streaming.batchSize"},
		{"no workers", func(c *Config) { c.Streaming.Workers = 0 }, "streaming.workers"},
		{"unknown policy", func(c *Config) { c.Streaming.Policy = "spiral" }, "streaming.policy"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			require.ErrorContains(t, cfg.Validate(), tc.field)
		})
	}
}

func TestCeilPow2(t *testing.T) {
	for in, want := range map[int]int{0: 0, 1: 1, 2: 2, 3: 4, 20: 32, 32: 32, 33: 64} {
		require.Equal(t, want, ceilPow2(in), "ceilPow2(%d)", in)
	}
}
