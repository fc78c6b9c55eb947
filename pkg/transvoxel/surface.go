// Package transvoxel extracts crack-free triangle meshes from density fields
// with the Transvoxel algorithm: marching-cubes style regular cells fill a
// region, and transition cells stitch faces that border a coarser region.
package transvoxel

import (
	"github.com/taigrr/terrace/pkg/density"
	"github.com/taigrr/terrace/pkg/math3d"
	"github.com/taigrr/terrace/pkg/models"
)

// ExtractSurface meshes a region of regionSize cells per axis. Sample
// (i, j, k) of field holds the density at region-local position
// (i-1, j-1, k-1); the field must include that margin and one extra layer
// past the far faces, or ExtractSurface panics. Faces set in mask are
// stitched to a coarser neighbor with transition cells.
//
// Vertex positions are region-local, in cell units. The output is
// deterministic for identical inputs.
func ExtractSurface(field *density.Field, regionSize int, mask FaceMask) *models.Mesh {
	if err := field.Validate(regionSize); err != nil {
		panic(err)
	}

	mesh := models.NewMesh("")
	if field.Uniform() {
		return mesh
	}

	e := &extractor{
		field: field,
		size:  regionSize,
		mask:  mask & AllFaces,
		mesh:  mesh,
		cache: NewVertexCache(mesh),
	}

	e.extractRegular()
	for _, d := range Directions {
		if e.mask.Has(d) {
			e.extractTransition(d)
		}
	}

	mesh.CalculateBounds()
	return mesh
}

// extractor carries the state shared by the regular and transition passes
// of one mesh build.
type extractor struct {
	field *density.Field
	size  int
	mask  FaceMask
	mesh  *models.Mesh
	cache *VertexCache
}

// density returns the sample at a region-local lattice position.
func (e *extractor) density(p math3d.Int3) float64 {
	return e.field.At(p.X+density.Margin, p.Y+density.Margin, p.Z+density.Margin)
}

// gradient estimates the unit surface normal at a lattice position with
// central differences.
func (e *extractor) gradient(p math3d.Int3) math3d.Vec3 {
	return math3d.V3(
		(e.density(p.Add(math3d.I3(1, 0, 0)))-e.density(p.Add(math3d.I3(-1, 0, 0))))*0.5,
		(e.density(p.Add(math3d.I3(0, 1, 0)))-e.density(p.Add(math3d.I3(0, -1, 0))))*0.5,
		(e.density(p.Add(math3d.I3(0, 0, 1)))-e.density(p.Add(math3d.I3(0, 0, -1))))*0.5,
	).Normalize()
}

// sample is one lattice point of a cell with its density and normal.
type sample struct {
	pos     math3d.Int3
	density float64
	normal  math3d.Vec3
}

// interpolate finds the zero crossing on the edge between a and b. t is the
// weight of a: d(b)/(d(b)-d(a)).
func interpolate(a, b sample) (pos, normal math3d.Vec3, t float64) {
	t = b.density / (b.density - a.density)
	pos = a.pos.Vec3().Scale(t).Add(b.pos.Vec3().Scale(1 - t))
	normal = a.normal.Scale(t).Add(b.normal.Scale(1 - t)).Normalize()
	return pos, normal, t
}

// pushed reports whether a vertex on the edge between lattice positions a
// and b needs border push-back.
func (e *extractor) pushed(a, b math3d.Int3) bool {
	if e.mask == 0 {
		return false
	}
	return shouldPushBack(a, e.size, e.mask) || shouldPushBack(b, e.size, e.mask)
}
