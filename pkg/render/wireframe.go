package render

import (
	"image/color"
	"math"

	"github.com/taigrr/terrace/pkg/math3d"
	"github.com/taigrr/terrace/pkg/models"
	"github.com/taigrr/terrace/pkg/octree"
	"github.com/taigrr/terrace/pkg/terrain"
)

// Wireframe draws 3D lines through a camera into a framebuffer. The camera
// transform is captured when the Wireframe is created.
type Wireframe struct {
	camera   *Camera
	fb       *Framebuffer
	viewProj math3d.Mat4
	frustum  Frustum
}

// NewWireframe prepares drawing of one frame.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	vp := camera.ViewProjection()
	return &Wireframe{
		camera:   camera,
		fb:       fb,
		viewProj: vp,
		frustum:  NewFrustum(vp),
	}
}

// DrawLine3D draws the part of the segment in front of the near plane.
func (w *Wireframe) DrawLine3D(a, b math3d.Vec3, c color.RGBA) {
	ca := w.viewProj.MulVec4(math3d.V4FromV3(a, 1))
	cb := w.viewProj.MulVec4(math3d.V4FromV3(b, 1))

	near := w.camera.Near
	switch {
	case ca.W < near && cb.W < near:
		return
	case ca.W < near:
		ca = lerp4(ca, cb, (near-ca.W)/(cb.W-ca.W))
	case cb.W < near:
		cb = lerp4(cb, ca, (near-cb.W)/(ca.W-cb.W))
	}

	x0, y0 := toScreen(ca, w.fb.Width, w.fb.Height)
	x1, y1 := toScreen(cb, w.fb.Width, w.fb.Height)
	if !w.crossesScreen(x0, y0, x1, y1) {
		return
	}
	w.fb.DrawLine(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Floor(x1)), int(math.Floor(y1)), c)
}

// crossesScreen rejects segments that are entirely off one side of the
// framebuffer or too long to rasterize.
func (w *Wireframe) crossesScreen(x0, y0, x1, y1 float64) bool {
	width, height := float64(w.fb.Width), float64(w.fb.Height)
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) ||
		(x0 >= width && x1 >= width) || (y0 >= height && y1 >= height) {
		return false
	}
	limit := 8 * (width + height)
	return math.Abs(x0) < limit && math.Abs(x1) < limit &&
		math.Abs(y0) < limit && math.Abs(y1) < limit
}

func lerp4(a, b math3d.Vec4, t float64) math3d.Vec4 {
	return math3d.V4(
		a.X+(b.X-a.X)*t,
		a.Y+(b.Y-a.Y)*t,
		a.Z+(b.Z-a.Z)*t,
		a.W+(b.W-a.W)*t,
	)
}

// boxEdges pairs the corners of a box in octree corner order.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// DrawBounds draws the twelve edges of a region cube.
func (w *Wireframe) DrawBounds(b octree.Bounds, c color.RGBA) {
	for _, e := range boxEdges {
		w.DrawLine3D(b.Corner(e[0]), b.Corner(e[1]), c)
	}
}

// DrawMesh draws the triangle edges of a region-local mesh placed in the
// world. Faces are shaded by how much their normal points up.
func (w *Wireframe) DrawMesh(m *models.Mesh, p models.Placement, c color.RGBA) {
	for _, f := range m.Faces {
		a := m.Vertices[f.V[0]]
		b := m.Vertices[f.V[1]]
		d := m.Vertices[f.V[2]]

		up := a.Normal.Add(b.Normal).Add(d.Normal).Normalize().Y
		shade := Shade(c, 0.35+0.65*max(0, up))

		pa, pb, pd := p.Apply(a.Position), p.Apply(b.Position), p.Apply(d.Position)
		w.DrawLine3D(pa, pb, shade)
		w.DrawLine3D(pb, pd, shade)
		w.DrawLine3D(pd, pa, shade)
	}
}

// DrawMarker draws a small axis-aligned cross.
func (w *Wireframe) DrawMarker(pos math3d.Vec3, size float64, c color.RGBA) {
	for axis := range 3 {
		d := math3d.Vec3{}.WithAxis(axis, size/2)
		w.DrawLine3D(pos.Sub(d), pos.Add(d), c)
	}
}

// TerrainStats counts what DrawTerrain drew.
type TerrainStats struct {
	Drawn  int
	Culled int
}

// DrawTerrain draws every region inside the view: its box in the color of
// its octree level and, when meshes is set, its surface edges.
func (w *Wireframe) DrawTerrain(tree *octree.Tree, regions []*terrain.Region, meshes bool) TerrainStats {
	var stats TerrainStats
	for _, r := range regions {
		b := r.Bounds()
		if !w.frustum.IntersectAABB(BoundsAABB(b)) {
			stats.Culled++
			continue
		}
		stats.Drawn++

		if meshes && r.Mesh() != nil {
			w.DrawMesh(r.Mesh(), r.Placement(), ColorSurface)
		}
		w.DrawBounds(b, LevelColor(tree.Level(b)))
	}
	return stats
}
