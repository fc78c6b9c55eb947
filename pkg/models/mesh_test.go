package models

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/terrace/pkg/math3d"
)

func quad() *Mesh {
	m := NewMesh("quad")
	up := math3d.Up()
	a := m.AddVertex(math3d.V3(0, 0, 0), up)
	b := m.AddVertex(math3d.V3(1, 0, 0), up)
	c := m.AddVertex(math3d.V3(1, 0, 1), up)
	d := m.AddVertex(math3d.V3(0, 0, 1), up)
	m.AddFace(a, d, c)
	m.AddFace(a, c, b)
	return m
}

func TestAddFaceDropsDegenerate(t *testing.T) {
	m := quad()
	require.False(t, m.AddFace(0, 0, 1))
	require.False(t, m.AddFace(2, 1, 2))
	require.Equal(t, 2, m.TriangleCount())
	require.NoError(t, m.Validate())
}

func TestValidate(t *testing.T) {
	m := quad()
	m.Faces = append(m.Faces, Face{V: [3]int{0, 1, 9}})
	require.Error(t, m.Validate())

	m = quad()
	m.Faces = append(m.Faces, Face{V: [3]int{3, 1, 3}})
	require.Error(t, m.Validate())
}

func TestTransformAndBounds(t *testing.T) {
	m := quad()
	p := Placement{Position: math3d.V3(32, 0, -16), Scale: 2}
	m.Transform(p.Matrix())

	require.Equal(t, math3d.V3(32, 0, -16), m.BoundsMin)
	require.Equal(t, math3d.V3(34, 0, -14), m.BoundsMax)
	require.Equal(t, p.Apply(math3d.V3(1, 0, 1)), m.Vertices[2].Position)
	require.InDelta(t, 1, m.Vertices[0].Normal.Len(), 1e-12)
}

func TestCloneIsDeep(t *testing.T) {
	m := quad()
	c := m.Clone()
	c.Vertices[0].Position = math3d.V3(9, 9, 9)
	c.Faces[0].V[0] = 3
	require.Equal(t, math3d.V3(0, 0, 0), m.Vertices[0].Position)
	require.Equal(t, 0, m.Faces[0].V[0])
}

func TestGLBRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrain.glb")
	parts := []Part{
		{Mesh: quad(), Placement: Placement{Position: math3d.V3(-16, 0, 0), Scale: 1}},
		{Mesh: NewMesh("empty"), Placement: Placement{Scale: 4}},
		{Mesh: quad(), Placement: Placement{Position: math3d.V3(0, 32, 64), Scale: 2}},
	}
	parts[2].Mesh.Name = "coarse"

	require.NoError(t, SaveGLB(path, parts))

	loaded, err := LoadGLB(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2, "empty meshes are not exported")

	require.Equal(t, 4, loaded[0].Mesh.VertexCount())
	require.Equal(t, 2, loaded[0].Mesh.TriangleCount())
	require.Equal(t, math3d.V3(-16, 0, 0), loaded[0].Placement.Position)
	require.Equal(t, 1.0, loaded[0].Placement.Scale)

	require.Equal(t, "coarse", loaded[1].Mesh.Name)
	require.Equal(t, 2.0, loaded[1].Placement.Scale)
	require.Equal(t, parts[2].Mesh.Faces, loaded[1].Mesh.Faces)
	for i, v := range loaded[1].Mesh.Vertices {
		require.True(t, v.Position.ApproxEqual(parts[2].Mesh.Vertices[i].Position, 1e-6))
		require.True(t, v.Normal.ApproxEqual(parts[2].Mesh.Vertices[i].Normal, 1e-6))
	}
}

// saveTriangle writes a single triangle whose positions and normals share
// one interleaved buffer view, indexed with 16-bit indices.
func saveTriangle(t *testing.T, positions any) string {
	t.Helper()
	doc := gltf.NewDocument()
	normals := [][3]float32{{0, 1, 0}, {0, 1, 0}, {0, 1, 0}}

	attrs, err := modeler.WriteAccessorsInterleaved(doc, positions, normals)
	require.NoError(t, err)
	idx := modeler.WriteIndices(doc, []uint16{0, 2, 1})

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(idx),
			Attributes: map[string]int{
				gltf.POSITION: attrs[0],
				gltf.NORMAL:   attrs[1],
			},
			Mode: gltf.PrimitiveTriangles,
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Mesh:        gltf.Index(0),
		Translation: [3]float64{8, 0, 8},
		Rotation:    [4]float64{0, 0, 0, 1},
		Scale:       [3]float64{2, 2, 2},
	})

	path := filepath.Join(t.TempDir(), "tri.glb")
	require.NoError(t, gltf.SaveBinary(doc, path))
	return path
}

func TestLoadGLBInterleaved(t *testing.T) {
	path := saveTriangle(t, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}})

	parts, err := LoadGLB(path)
	require.NoError(t, err)
	require.Len(t, parts, 1)

	m := parts[0].Mesh
	require.Equal(t, "tri", m.Name)
	require.Equal(t, []Face{{V: [3]int{0, 2, 1}}}, m.Faces)
	require.Equal(t, math3d.V3(1, 0, 0), m.Vertices[1].Position)
	require.Equal(t, math3d.Up(), m.Vertices[2].Normal)
	require.Equal(t, Placement{Position: math3d.V3(8, 0, 8), Scale: 2}, parts[0].Placement)
}

func TestLoadGLBRejectsIntegerPositions(t *testing.T) {
	path := saveTriangle(t, [][3]uint16{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}})

	_, err := LoadGLB(path)
	require.Error(t, err)
}

func TestBake(t *testing.T) {
	parts := []Part{
		{Mesh: quad(), Placement: Placement{Position: math3d.V3(32, 0, -16), Scale: 2}},
		{Mesh: NewMesh("empty"), Placement: Placement{Scale: 4}},
	}

	baked := Bake(parts)
	require.Len(t, baked, 2)
	require.Equal(t, Placement{Scale: 1}, baked[0].Placement)
	require.Equal(t, math3d.V3(34, 0, -14), baked[0].Mesh.Vertices[2].Position)
	require.Equal(t, math3d.V3(34, 0, -14), baked[0].Mesh.BoundsMax)
	require.Equal(t, "quad", baked[0].Mesh.Name)

	// The source meshes are untouched.
	require.Equal(t, math3d.V3(1, 0, 1), parts[0].Mesh.Vertices[2].Position)
	require.Equal(t, 2.0, parts[0].Placement.Scale)
}

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	require.Error(t, err)
}
