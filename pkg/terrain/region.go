package terrain

import (
	"github.com/aukilabs/go-tooling/pkg/errors"

	"github.com/taigrr/terrace/pkg/density"
	"github.com/taigrr/terrace/pkg/math3d"
	"github.com/taigrr/terrace/pkg/models"
	"github.com/taigrr/terrace/pkg/octree"
	"github.com/taigrr/terrace/pkg/transvoxel"
)

// Region is one cube of terrain. It keeps its density field and one mesh
// per face mask it has been meshed with, so moving back and forth between
// LOD configurations never samples or meshes the same thing twice.
type Region struct {
	bounds     octree.Bounds
	regionSize int

	field   *density.Field
	meshes  map[transvoxel.FaceMask]*models.Mesh
	mask    transvoxel.FaceMask
	final   bool
	visible bool
}

func newRegion(b octree.Bounds, regionSize int) *Region {
	return &Region{
		bounds:     b,
		regionSize: regionSize,
		meshes:     make(map[transvoxel.FaceMask]*models.Mesh),
	}
}

// Bounds returns the cube covered by the region.
func (r *Region) Bounds() octree.Bounds {
	return r.bounds
}

// Scale returns the world size of one cell.
func (r *Region) Scale() float64 {
	return r.bounds.Size / float64(r.regionSize)
}

// Origin returns the world position of field sample (0, 0, 0), one cell
// below the region's minimum corner.
func (r *Region) Origin() math3d.Vec3 {
	return r.bounds.Min().Sub(math3d.Splat(r.Scale()))
}

// Placement maps region-local mesh positions to world space.
func (r *Region) Placement() models.Placement {
	return models.Placement{
		Position: r.bounds.Min(),
		Scale:    r.Scale(),
	}
}

// Field returns the cached density field, or nil before the first
// generation.
func (r *Region) Field() *density.Field {
	return r.field
}

// SetField stores the density field. Only the first field is kept.
func (r *Region) SetField(f *density.Field) {
	if r.field == nil {
		r.field = f
	}
}

// CachedMesh returns the mesh built for mask, if any.
func (r *Region) CachedMesh(mask transvoxel.FaceMask) (*models.Mesh, bool) {
	m, ok := r.meshes[mask]
	return m, ok
}

// SetMesh caches the mesh built for mask.
func (r *Region) SetMesh(mask transvoxel.FaceMask, m *models.Mesh) {
	r.meshes[mask] = m
}

// Finalize makes the mesh cached for mask the current one. The region must
// hold a field and a mesh for mask.
func (r *Region) Finalize(mask transvoxel.FaceMask) {
	if r.field == nil {
		panic(errors.New("finalizing region without density field").
			WithTag("bounds", r.bounds))
	}
	if _, ok := r.meshes[mask]; !ok {
		panic(errors.New("finalizing region without mesh").
			WithTag("bounds", r.bounds).
			WithTag("mask", mask.String()))
	}
	r.mask = mask
	r.final = true
}

// Mask returns the face mask of the current mesh.
func (r *Region) Mask() transvoxel.FaceMask {
	return r.mask
}

// Mesh returns the current mesh, or nil before the region was finalized.
func (r *Region) Mesh() *models.Mesh {
	if !r.final {
		return nil
	}
	return r.meshes[r.mask]
}

// MeshCount returns the number of cached face mask variants.
func (r *Region) MeshCount() int {
	return len(r.meshes)
}

// Visible reports whether the region is part of the current leaf set.
func (r *Region) Visible() bool {
	return r.visible
}

func (r *Region) setVisible(v bool) {
	r.visible = v
}
