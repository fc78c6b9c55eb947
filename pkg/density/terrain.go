package density

import (
	"math"
	"sync"

	"github.com/ojrac/opensimplex-go"

	"github.com/taigrr/terrace/pkg/math3d"
)

// Terrain produces heightfield terrain carved by caves. The height comes from
// ridged multi-octave 2D simplex noise; caves subtract cubed 3D noise.
type Terrain struct {
	mu    sync.Mutex
	noise map[int64]opensimplex.Noise
}

// NewTerrain creates a terrain producer.
func NewTerrain() *Terrain {
	return &Terrain{noise: make(map[int64]opensimplex.Noise)}
}

// Sample implements Producer.
func (t *Terrain) Sample(width, height, depth int, scale float64, origin math3d.Vec3, params Params) *Field {
	heightNoise := t.generator(params.Seed)
	caveNoise := t.generator(params.Seed + 1)

	f := NewField(width, height, depth)

	// Height only depends on x and z, so evaluate it once per column.
	heights := make([]float64, width*depth)
	for z := range depth {
		for x := range width {
			p := latticePoint(origin, scale, x, 0, z).Add(params.Offset)
			heights[z*width+x] = params.Amplitude * ridged(heightNoise, p.X, p.Z, params)
		}
	}

	f.Fill(func(x, y, z int) float64 {
		p := latticePoint(origin, scale, x, y, z)
		d := p.Y - heights[z*width+x]
		if params.Caves > 0 {
			q := p.Add(params.Offset).Scale(1 / params.Scale)
			c := caveNoise.Eval3(q.X, q.Y, q.Z)
			d += params.Caves * params.Amplitude * (c*c*c + 0.03)
		}
		return d
	})
	return f
}

func (t *Terrain) generator(seed int64) opensimplex.Noise {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.noise[seed]
	if !ok {
		n = opensimplex.New(seed)
		t.noise[seed] = n
	}
	return n
}

// ridged returns normalized ridged fractal noise in [0, 1].
func ridged(n opensimplex.Noise, x, z float64, params Params) float64 {
	if params.Octaves <= 0 || params.Scale <= 0 {
		return 0
	}

	freq := 1 / params.Scale
	amp := 1.0
	var sum, norm float64
	for range params.Octaves {
		v := 1 - math.Abs(n.Eval2(x*freq, z*freq))
		sum += v * v * amp
		norm += amp
		amp *= params.Persistence
		freq *= params.Lacunarity
	}
	return sum / norm
}
