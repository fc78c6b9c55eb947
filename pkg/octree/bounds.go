package octree

import (
	"math"

	"github.com/taigrr/terrace/pkg/math3d"
)

// Bounds is an axis-aligned cube. Sizes are powers of two on an
// integer-aligned grid, so halving never rounds and Bounds can be compared
// and used as a map key directly.
type Bounds struct {
	Center math3d.Vec3
	Size   float64
}

// Around returns the cube of the given size centered on p snapped to a grid
// of the given step.
func Around(p math3d.Vec3, step, size float64) Bounds {
	return Bounds{Center: p.Snap(step), Size: size}
}

// Min returns the minimum corner.
func (b Bounds) Min() math3d.Vec3 {
	return b.Center.Sub(math3d.Splat(b.Size / 2))
}

// Max returns the maximum corner.
func (b Bounds) Max() math3d.Vec3 {
	return b.Center.Add(math3d.Splat(b.Size / 2))
}

// Contains reports whether p lies inside the cube or on its boundary.
func (b Bounds) Contains(p math3d.Vec3) bool {
	half := b.Size / 2
	return math.Abs(p.X-b.Center.X) <= half &&
		math.Abs(p.Y-b.Center.Y) <= half &&
		math.Abs(p.Z-b.Center.Z) <= half
}

// Child returns the bounds of child i in corner order: bit 0 selects +x,
// bit 1 +y and bit 2 +z.
func (b Bounds) Child(i int) Bounds {
	q := b.Size / 4
	offset := math3d.Splat(-q)
	for axis := range 3 {
		if i&(1<<axis) != 0 {
			offset = offset.WithAxis(axis, q)
		}
	}
	return Bounds{Center: b.Center.Add(offset), Size: b.Size / 2}
}

// ChildIndex returns the first child in corner order whose bounds contain p.
// Points on a splitting plane go to the low side.
func (b Bounds) ChildIndex(p math3d.Vec3) int {
	i := 0
	for axis := range 3 {
		if p.Axis(axis) > b.Center.Axis(axis) {
			i |= 1 << axis
		}
	}
	return i
}

// Corner returns corner i of the cube in the same order as Child.
func (b Bounds) Corner(i int) math3d.Vec3 {
	c := b.Min()
	for axis := range 3 {
		if i&(1<<axis) != 0 {
			c = c.WithAxis(axis, c.Axis(axis)+b.Size)
		}
	}
	return c
}
