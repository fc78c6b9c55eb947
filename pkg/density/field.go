// Package density holds the signed scalar grids that surfaces are extracted
// from, and the producers that fill them.
//
// Negative samples are solid, positive samples are air. A region of n cells
// per axis needs n+3 samples per axis: one layer below the region and two
// above, so every cell corner has neighbors for central differences.
package density

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// Margin is the number of sample layers stored below a region's first cell.
const Margin = 1

// RequiredSize returns the number of samples per axis a field must hold to
// mesh a region of regionSize cells.
func RequiredSize(regionSize int) int {
	return regionSize + 3
}

// Field is a dense 3D grid of density samples.
type Field struct {
	Width  int
	Height int
	Depth  int
	Values []float64 // Indexed z*Width*Height + y*Width + x
}

// NewField allocates a zeroed field.
func NewField(width, height, depth int) *Field {
	if width <= 0 || height <= 0 || depth <= 0 {
		panic(errors.New("invalid density field dimensions").
			WithTag("width", width).
			WithTag("height", height).
			WithTag("depth", depth))
	}
	return &Field{
		Width:  width,
		Height: height,
		Depth:  depth,
		Values: make([]float64, width*height*depth),
	}
}

// Contains reports whether (x, y, z) addresses a stored sample.
func (f *Field) Contains(x, y, z int) bool {
	return x >= 0 && x < f.Width &&
		y >= 0 && y < f.Height &&
		z >= 0 && z < f.Depth
}

// Index returns the flat index of (x, y, z). It panics when the coordinate
// lies outside the field.
func (f *Field) Index(x, y, z int) int {
	if !f.Contains(x, y, z) {
		panic(errors.New("density field access out of range").
			WithTag("x", x).
			WithTag("y", y).
			WithTag("z", z).
			WithTag("width", f.Width).
			WithTag("height", f.Height).
			WithTag("depth", f.Depth))
	}
	return z*f.Width*f.Height + y*f.Width + x
}

// At returns the sample at (x, y, z).
func (f *Field) At(x, y, z int) float64 {
	return f.Values[f.Index(x, y, z)]
}

// Set stores the sample at (x, y, z).
func (f *Field) Set(x, y, z int, v float64) {
	f.Values[f.Index(x, y, z)] = v
}

// Fill evaluates fn for every sample.
func (f *Field) Fill(fn func(x, y, z int) float64) {
	i := 0
	for z := range f.Depth {
		for y := range f.Height {
			for x := range f.Width {
				f.Values[i] = fn(x, y, z)
				i++
			}
		}
	}
}

// Validate checks that the field is large enough to mesh a region of
// regionSize cells including the overscan margin.
func (f *Field) Validate(regionSize int) error {
	if f == nil {
		return errors.New("density field is missing")
	}
	if len(f.Values) != f.Width*f.Height*f.Depth {
		return errors.New("density field buffer does not match its dimensions").
			WithTag("len", len(f.Values)).
			WithTag("width", f.Width).
			WithTag("height", f.Height).
			WithTag("depth", f.Depth)
	}
	need := RequiredSize(regionSize)
	if f.Width < need || f.Height < need || f.Depth < need {
		return errors.New("density field lacks the overscan margin").
			WithTag("region_size", regionSize).
			WithTag("required", need).
			WithTag("width", f.Width).
			WithTag("height", f.Height).
			WithTag("depth", f.Depth)
	}
	return nil
}

// Uniform reports whether every sample has the same sign, in which case no
// surface crosses the field.
func (f *Field) Uniform() bool {
	if len(f.Values) == 0 {
		return true
	}
	solid := f.Values[0] < 0
	for _, v := range f.Values[1:] {
		if (v < 0) != solid {
			return false
		}
	}
	return true
}
