package transvoxel

import (
	"github.com/taigrr/terrace/pkg/math3d"
)

// transitionWidth is how far, in full-resolution cells, boundary vertices
// are pulled into the region next to a coarser neighbor. It is one eighth of
// a half-resolution cell.
const transitionWidth = 0.25

// positionFaces returns the faces a lattice position lies on.
func positionFaces(p math3d.Int3, size int) FaceMask {
	var m FaceMask
	coords := [3]int{p.X, p.Y, p.Z}
	for axis, c := range coords {
		if c == 0 {
			m |= Direction(axis * 2).Bit()
		}
		if c == size {
			m |= Direction(axis*2 + 1).Bit()
		}
	}
	return m
}

// shouldPushBack reports whether vertices touching the lattice position must
// be moved off the boundary. A position on a single face is pushed when that
// face transitions; a position on an edge or corner only when every face it
// lies on transitions.
func shouldPushBack(p math3d.Int3, size int, mask FaceMask) bool {
	faces := positionFaces(p, size)
	if faces == 0 || faces&mask == 0 {
		return false
	}
	if faces.Count() > 1 {
		return faces&mask == faces
	}
	return true
}

// borderOffset returns the push-back displacement of a region-local point
// before projection. It is zero more than one cell away from the boundary
// and grows linearly to transitionWidth on the boundary itself.
func borderOffset(pos math3d.Vec3, size int) math3d.Vec3 {
	var delta math3d.Vec3
	far := float64(size - 1)
	for axis := range 3 {
		p := pos.Axis(axis)
		switch {
		case p < 1:
			delta = delta.WithAxis(axis, (1-p)*transitionWidth)
		case p > far:
			delta = delta.WithAxis(axis, (far-p)*transitionWidth)
		}
	}
	return delta
}

// pushBack moves a boundary vertex into the region along the surface. The
// offset is projected onto the tangent plane of the unit normal so the
// vertex stays on the isosurface.
func pushBack(pos, normal math3d.Vec3, size int) math3d.Vec3 {
	return pos.Add(borderOffset(pos, size).ProjectOnPlane(normal))
}
