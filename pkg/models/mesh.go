// Package models holds the triangle meshes produced for terrain regions and
// their glTF interchange.
package models

import (
	"github.com/aukilabs/go-tooling/pkg/errors"

	"github.com/taigrr/terrace/pkg/math3d"
)

// Mesh is an indexed triangle mesh. Positions and normals live side by side
// in Vertices so they always stay index-aligned.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Faces    []Face

	// Bounding box (calculated by CalculateBounds)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Vertex holds the attributes of one mesh vertex.
type Vertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
}

// Face is a triangle referencing three entries of Mesh.Vertices.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]Vertex, 0),
		Faces:    make([]Face, 0),
	}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(pos, normal math3d.Vec3) int {
	m.Vertices = append(m.Vertices, Vertex{Position: pos, Normal: normal})
	return len(m.Vertices) - 1
}

// AddFace appends a triangle. Triangles that reference the same vertex
// twice have no area and are dropped; AddFace reports whether the face was
// kept.
func (m *Mesh) AddFace(a, b, c int) bool {
	if a == b || b == c || a == c {
		return false
	}
	m.Faces = append(m.Faces, Face{V: [3]int{a, b, c}})
	return true
}

// Empty reports whether the mesh has no triangles.
func (m *Mesh) Empty() bool {
	return len(m.Faces) == 0
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin = math3d.Vec3{}
		m.BoundsMax = math3d.Vec3{}
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Validate checks the structural invariants of the mesh: every index is in
// range and no triangle repeats a vertex.
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, v := range f.V {
			if v < 0 || v >= len(m.Vertices) {
				return errors.New("face references a missing vertex").
					WithTag("mesh", m.Name).
					WithTag("face", i).
					WithTag("index", v).
					WithTag("vertices", len(m.Vertices))
			}
		}
		if f.V[0] == f.V[1] || f.V[1] == f.V[2] || f.V[0] == f.V[2] {
			return errors.New("face repeats a vertex").
				WithTag("mesh", m.Name).
				WithTag("face", i)
		}
	}
	return nil
}

// Transform applies a transformation matrix to all vertices. Normals are
// transformed as directions, which is exact for uniform scales.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i].Position = mat.MulVec3(m.Vertices[i].Position)
		m.Vertices[i].Normal = mat.MulVec3Dir(m.Vertices[i].Normal).Normalize()
	}
	m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]Vertex, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// Placement positions a region mesh in the world: vertices are scaled
// uniformly and then offset by Position.
type Placement struct {
	Position math3d.Vec3
	Scale    float64
}

// Matrix returns the placement as a transform.
func (p Placement) Matrix() math3d.Mat4 {
	return math3d.TranslateScale(p.Position, p.Scale)
}

// Apply maps a region-local point to world space.
func (p Placement) Apply(v math3d.Vec3) math3d.Vec3 {
	return p.Position.Add(v.Scale(p.Scale))
}
