// Package config loads the terrain settings from YAML.
package config

import (
	"math/bits"
	"os"
	"runtime"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"gopkg.in/yaml.v3"

	"github.com/taigrr/terrace/pkg/density"
	"github.com/taigrr/terrace/pkg/octree"
)

// Config is the complete configuration of a terrain.
type Config struct {
	Terrain   TerrainConfig   `yaml:"terrain"`
	Noise     density.Params  `yaml:"noise"`
	Streaming StreamingConfig `yaml:"streaming"`
	Log       LogConfig       `yaml:"log"`
}

// TerrainConfig describes the meshing resolution.
type TerrainConfig struct {
	RegionSize int `yaml:"regionSize"` // Cells per region axis
}

// StreamingConfig controls how regions follow the viewer.
type StreamingConfig struct {
	OctreeDepth         int     `yaml:"octreeDepth"`
	RenderDistance      int     `yaml:"renderDistance"`      // Root size in regions, rounded up to a power of two
	ViewerMoveThreshold float64 `yaml:"viewerMoveThreshold"` // World units before the octree is rebuilt
	Policy              string  `yaml:"policy"`              // "distance" or "branch"
	BatchSize           int     `yaml:"batchSize"`
	Workers             int     `yaml:"workers"`
}

// LogConfig sets the log output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			RegionSize: 16,
		},
		Noise: density.DefaultParams(),
		Streaming: StreamingConfig{
			OctreeDepth:         5,
			RenderDistance:      32,
			ViewerMoveThreshold: 25,
			Policy:              octree.PolicyDistance,
			BatchSize:           32,
			Workers:             runtime.NumCPU(),
		},
		Log: LogConfig{
			Level: logs.InfoLevel.String(),
		},
	}
}

// Load reads a YAML file over the defaults and validates the result. An
// empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("reading config failed").
			WithTag("path", path).
			Wrap(err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("parsing config failed").
			WithTag("path", path).
			Wrap(err)
	}

	cfg.Streaming.RenderDistance = ceilPow2(cfg.Streaming.RenderDistance)
	if err := cfg.Validate(); err != nil {
		return nil, errors.New("invalid config").
			WithTag("path", path).
			Wrap(err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Terrain.RegionSize < 2 || c.Terrain.RegionSize%2 != 0:
		return invalid("terrain.regionSize", c.Terrain.RegionSize)

	case c.Noise.Scale <= 0:
		return invalid("noise.scale", c.Noise.Scale)
	case c.Noise.Octaves < 1:
		return invalid("noise.octaves", c.Noise.Octaves)
	case c.Noise.Lacunarity <= 0:
		return invalid("noise.lacunarity", c.Noise.Lacunarity)

	case c.Streaming.OctreeDepth < 0 || c.Streaming.OctreeDepth > 16:
		return invalid("streaming.octreeDepth", c.Streaming.OctreeDepth)
	case c.Streaming.RenderDistance < 1 || c.Streaming.RenderDistance&(c.Streaming.RenderDistance-1) != 0:
		return invalid("streaming.renderDistance", c.Streaming.RenderDistance)
	case c.Streaming.ViewerMoveThreshold < 0:
		return invalid("streaming.viewerMoveThreshold", c.Streaming.ViewerMoveThreshold)
	case c.Streaming.BatchSize < 1:
		return invalid("streaming.batchSize", c.Streaming.BatchSize)
	case c.Streaming.Workers < 1:
		return invalid("streaming.workers", c.Streaming.Workers)
	}

	if _, err := octree.ParsePolicy(c.Streaming.Policy); err != nil {
		return errors.Newf("invalid streaming.policy").Wrap(err)
	}
	return nil
}

// RootSize returns the edge length of the octree root in world units.
func (c *Config) RootSize() float64 {
	return float64(c.Terrain.RegionSize * c.Streaming.RenderDistance)
}

func invalid(field string, value any) error {
	return errors.Newf("invalid %s", field).WithTag("value", value)
}

func ceilPow2(n int) int {
	if n <= 1 {
		return n
	}
	return 1 << bits.Len(uint(n-1))
}
