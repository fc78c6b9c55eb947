package density

import (
	"github.com/taigrr/terrace/pkg/math3d"
)

// Params are the noise settings handed to a producer with every request.
type Params struct {
	Seed        int64       `yaml:"seed"`
	Scale       float64     `yaml:"scale"`       // World units per noise feature
	Octaves     int         `yaml:"octaves"`     // Layers of detail
	Persistence float64     `yaml:"persistence"` // Amplitude falloff per octave
	Lacunarity  float64     `yaml:"lacunarity"`  // Frequency growth per octave
	Amplitude   float64     `yaml:"amplitude"`   // Peak terrain height in world units
	Caves       float64     `yaml:"caves"`       // Cave noise weight, 0 disables caves
	Offset      math3d.Vec3 `yaml:"offset"`
}

// DefaultParams returns the settings used when no configuration is given.
func DefaultParams() Params {
	return Params{
		Seed:        0,
		Scale:       50,
		Octaves:     6,
		Persistence: 0.6,
		Lacunarity:  2,
		Amplitude:   48,
		Caves:       0.5,
	}
}

// Producer fills density fields. Sample (x, y, z) of the result is taken at
// world position origin + (x, y, z)*scale. Implementations must be
// deterministic for fixed inputs and safe for concurrent use.
type Producer interface {
	Sample(width, height, depth int, scale float64, origin math3d.Vec3, params Params) *Field
}

// Func is a world-space density function usable as a Producer. It ignores
// the noise parameters.
type Func func(p math3d.Vec3) float64

// Sample evaluates fn on the sampling lattice.
func (fn Func) Sample(width, height, depth int, scale float64, origin math3d.Vec3, _ Params) *Field {
	f := NewField(width, height, depth)
	f.Fill(func(x, y, z int) float64 {
		return fn(latticePoint(origin, scale, x, y, z))
	})
	return f
}

// Plane is solid below the horizontal plane at height and air above it.
func Plane(height float64) Func {
	return func(p math3d.Vec3) float64 {
		return p.Y - height
	}
}

// Sphere is solid inside the ball at center with the given radius.
func Sphere(center math3d.Vec3, radius float64) Func {
	return func(p math3d.Vec3) float64 {
		return p.Distance(center) - radius
	}
}

// Solid is negative everywhere.
func Solid() Func {
	return func(math3d.Vec3) float64 { return -1 }
}

// Empty is positive everywhere.
func Empty() Func {
	return func(math3d.Vec3) float64 { return 1 }
}

func latticePoint(origin math3d.Vec3, scale float64, x, y, z int) math3d.Vec3 {
	return math3d.V3(
		origin.X+float64(x)*scale,
		origin.Y+float64(y)*scale,
		origin.Z+float64(z)*scale,
	)
}
