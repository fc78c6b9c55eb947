package transvoxel

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taigrr/terrace/pkg/density"
	"github.com/taigrr/terrace/pkg/math3d"
	"github.com/taigrr/terrace/pkg/models"
)

const regionSize = 16

// regionField samples fn for a region whose minimum corner is at min and
// whose cells are scale world units wide.
func regionField(fn density.Func, min math3d.Vec3, scale float64) *density.Field {
	n := density.RequiredSize(regionSize)
	return fn.Sample(n, n, n, scale, min.Sub(math3d.Splat(scale)), density.Params{})
}

func sphereField() *density.Field {
	return regionField(density.Sphere(math3d.V3(8, 8, 8), 9.3), math3d.Vec3{}, 1)
}

// windingAreas sums triangle areas whose geometric normal agrees and
// disagrees with the interpolated vertex normals.
func windingAreas(m *models.Mesh) (agree, disagree float64) {
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f.V[0]], m.Vertices[f.V[1]], m.Vertices[f.V[2]]
		cross := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		area := cross.Len() / 2
		switch s := cross.Dot(a.Normal.Add(b.Normal).Add(c.Normal)); {
		case s > 0:
			agree += area
		case s < 0:
			disagree += area
		}
	}
	return agree, disagree
}

func requireWellFormed(t *testing.T, m *models.Mesh) {
	t.Helper()
	require.NoError(t, m.Validate())
	for _, v := range m.Vertices {
		require.InDelta(t, 1, v.Normal.Len(), 1e-9)
	}
}

func TestExtractSurfaceUniformFields(t *testing.T) {
	for name, fn := range map[string]density.Func{
		"empty": density.Empty(),
		"solid": density.Solid(),
	} {
		t.Run(name, func(t *testing.T) {
			m := ExtractSurface(regionField(fn, math3d.Vec3{}, 1), regionSize, AllFaces)
			require.Zero(t, m.VertexCount())
			require.Zero(t, m.TriangleCount())
		})
	}
}

func TestExtractSurfaceRequiresMargin(t *testing.T) {
	small := density.NewField(regionSize+2, regionSize+3, regionSize+3)
	require.Panics(t, func() { ExtractSurface(small, regionSize, 0) })
	require.Panics(t, func() { ExtractSurface(nil, regionSize, 0) })
}

func TestExtractSurfaceFlatPlane(t *testing.T) {
	field := regionField(density.Plane(8), math3d.Vec3{}, 1)
	m := ExtractSurface(field, regionSize, 0)

	requireWellFormed(t, m)
	require.Equal(t, 17*17, m.VertexCount())
	require.Equal(t, 16*16*2, m.TriangleCount())
	for _, v := range m.Vertices {
		require.Equal(t, 8.0, v.Position.Y)
		require.True(t, v.Normal.ApproxEqual(math3d.Up(), 1e-12), "normal %v", v.Normal)
	}

	agree, disagree := windingAreas(m)
	require.Zero(t, disagree)
	require.InDelta(t, 16*16, agree, 1e-9)
}

func TestExtractSurfaceHorizontalFaceUntouched(t *testing.T) {
	field := regionField(density.Plane(8), math3d.Vec3{}, 1)
	plain := ExtractSurface(field, regionSize, 0)
	stitched := ExtractSurface(field, regionSize, PosY.Bit())

	// The plane never crosses the top face, so there is nothing to stitch.
	require.Equal(t, plain.Vertices, stitched.Vertices)
	require.Equal(t, plain.Faces, stitched.Faces)
}

func TestExtractSurfaceStitchesCrossedFace(t *testing.T) {
	field := regionField(density.Plane(8), math3d.Vec3{}, 1)
	plain := ExtractSurface(field, regionSize, 0)
	stitched := ExtractSurface(field, regionSize, PosX.Bit())

	requireWellFormed(t, stitched)

	// Only the row of 2x2 groups straddling y=8 is crossed: eight transition
	// cells of at most three triangles each.
	added := stitched.TriangleCount() - plain.TriangleCount()
	require.Greater(t, added, 0)
	require.LessOrEqual(t, added, 8*3)

	seen := make(map[[3]int]bool)
	for _, f := range stitched.Faces {
		key := f.V
		sort.Ints(key[:])
		require.False(t, seen[key], "duplicate triangle %v", f.V)
		seen[key] = true
	}

	// Seam vertices away from the region's edges are pulled in from x=16.
	for _, v := range stitched.Vertices {
		p := v.Position
		if p.Z > 0 && p.Z < regionSize && p.X > regionSize-1 && p.X < regionSize {
			require.Equal(t, regionSize-transitionWidth, p.X)
		}
	}
}

func TestExtractSurfaceDeterministic(t *testing.T) {
	field := sphereField()
	a := ExtractSurface(field, regionSize, NegX.Bit()|PosZ.Bit())
	b := ExtractSurface(field, regionSize, NegX.Bit()|PosZ.Bit())
	require.Equal(t, a.Vertices, b.Vertices)
	require.Equal(t, a.Faces, b.Faces)
}

func TestExtractSurfaceSphereWellFormed(t *testing.T) {
	field := sphereField()
	for mask := FaceMask(0); mask <= AllFaces; mask += 7 {
		m := ExtractSurface(field, regionSize, mask)
		requireWellFormed(t, m)
		require.NotZero(t, m.TriangleCount())

		agree, disagree := windingAreas(m)
		require.Zero(t, disagree, "mask %v", mask)
		require.Greater(t, agree, 0.0)
	}
}

func TestTransitionWindingPerDirection(t *testing.T) {
	field := sphereField()
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			mesh := models.NewMesh("")
			e := &extractor{
				field: field,
				size:  regionSize,
				mask:  d.Bit(),
				mesh:  mesh,
				cache: NewVertexCache(mesh),
			}
			e.extractTransition(d)

			require.NotZero(t, mesh.TriangleCount())
			agree, disagree := windingAreas(mesh)
			require.Zero(t, disagree)
			require.Greater(t, agree, 0.0)
		})
	}
}

func TestCrackFreeAgainstCoarserNeighbor(t *testing.T) {
	fn := density.Sphere(math3d.V3(10.3, 7.1, 9.7), 11.37)

	// A 16-unit region at the origin next to a 32-unit region on its +X side.
	fine := models.Placement{Position: math3d.V3(0, 0, 0), Scale: 1}
	coarse := models.Placement{Position: math3d.V3(16, 0, 0), Scale: 2}

	fineMesh := ExtractSurface(regionField(fn, fine.Position, fine.Scale), regionSize, PosX.Bit())
	coarseMesh := ExtractSurface(regionField(fn, coarse.Position, coarse.Scale), regionSize, 0)

	var fineWorld []math3d.Vec3
	for _, v := range fineMesh.Vertices {
		fineWorld = append(fineWorld, fine.Apply(v.Position))
	}

	checked := 0
	for _, v := range coarseMesh.Vertices {
		p := coarse.Apply(v.Position)
		if p.X != 16 || p.Y > 16 || p.Z > 16 {
			continue
		}
		checked++

		found := false
		for _, q := range fineWorld {
			if q.ApproxEqual(p, 1e-9) {
				found = true
				break
			}
		}
		require.True(t, found, "coarse seam vertex %v has no fine counterpart", p)
	}
	require.NotZero(t, checked)
}

func TestInterpolate(t *testing.T) {
	a := sample{pos: math3d.I3(0, 0, 0), density: -1, normal: math3d.V3(1, 0, 0)}
	b := sample{pos: math3d.I3(1, 0, 0), density: 3, normal: math3d.V3(1, 0, 0)}

	pos, normal, tw := interpolate(a, b)
	require.InDelta(t, 0.75, tw, 1e-12)
	require.True(t, pos.ApproxEqual(math3d.V3(0.25, 0, 0), 1e-12))
	require.Equal(t, math3d.V3(1, 0, 0), normal)

	// A zero sample yields the sample point itself.
	b.density = 0
	pos, _, tw = interpolate(a, b)
	require.Zero(t, tw)
	require.Equal(t, math3d.V3(1, 0, 0), pos)
}

func TestTablesConsistent(t *testing.T) {
	require.Zero(t, regularCellClass[0])
	require.Zero(t, regularCellClass[255])
	for c := range 256 {
		cell := regularCellData[regularCellClass[c]]
		require.Len(t, regularVertexData[c], cell.vertexCount(), "case %d", c)
		require.Len(t, cell.vertexIndex, cell.triangleCount()*3, "case %d", c)
		for _, i := range cell.vertexIndex {
			require.Less(t, int(i), cell.vertexCount())
		}
		for _, code := range regularVertexData[c] {
			v0, v1 := (code>>4)&0x0F, code&0x0F
			require.Less(t, v0, v1)
			require.Less(t, int(v1), 8)
			// Exactly one endpoint is solid for every generated vertex.
			require.NotEqual(t, c>>v0&1, c>>v1&1, "case %d edge %x", c, code&0xFF)
		}
	}

	require.Zero(t, transitionCellClass[0]&0x7F)
	require.Zero(t, transitionCellClass[511]&0x7F)
	for c := range 512 {
		cell := transitionCellData[transitionCellClass[c]&0x7F]
		require.Len(t, transitionVertexData[c], cell.vertexCount(), "case %d", c)
		require.Len(t, cell.vertexIndex, cell.triangleCount()*3, "case %d", c)
		for _, code := range transitionVertexData[c] {
			v0, v1 := int(code>>4)&0x0F, int(code)&0x0F
			require.Less(t, v1, 13)
			solid := func(i int) bool {
				return uint16(c)&transitionCaseBits[transitionAlias[i]] != 0
			}
			require.NotEqual(t, solid(v0), solid(v1), "case %d edge %x", c, code)
		}
	}
}

func TestShouldPushBack(t *testing.T) {
	tests := []struct {
		name string
		p    math3d.Int3
		mask FaceMask
		want bool
	}{
		{"interior", math3d.I3(4, 4, 4), AllFaces, false},
		{"unflagged face", math3d.I3(0, 4, 4), PosX.Bit(), false},
		{"flagged face", math3d.I3(16, 4, 4), PosX.Bit(), true},
		{"edge with one face flagged", math3d.I3(16, 4, 0), PosX.Bit(), false},
		{"edge with both faces flagged", math3d.I3(16, 4, 0), PosX.Bit() | NegZ.Bit(), true},
		{"corner with two of three", math3d.I3(0, 0, 0), NegX.Bit() | NegY.Bit(), false},
		{"corner with all three", math3d.I3(0, 0, 16), NegX.Bit() | NegY.Bit() | PosZ.Bit(), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, shouldPushBack(tc.p, regionSize, tc.mask))
		})
	}
}

func TestBorderOffset(t *testing.T) {
	tests := []struct {
		pos  math3d.Vec3
		want math3d.Vec3
	}{
		{math3d.V3(8, 8, 8), math3d.Vec3{}},
		{math3d.V3(0, 8, 8), math3d.V3(transitionWidth, 0, 0)},
		{math3d.V3(0.5, 8, 8), math3d.V3(transitionWidth/2, 0, 0)},
		{math3d.V3(1, 8, 15), math3d.Vec3{}},
		{math3d.V3(8, 16, 8), math3d.V3(0, -transitionWidth, 0)},
		{math3d.V3(8, 8, 15.5), math3d.V3(0, 0, -transitionWidth/2)},
		{math3d.V3(0, 16, 0), math3d.V3(transitionWidth, -transitionWidth, transitionWidth)},
	}

	for _, tc := range tests {
		got := borderOffset(tc.pos, regionSize)
		require.True(t, got.ApproxEqual(tc.want, 1e-12), "offset at %v = %v, want %v", tc.pos, got, tc.want)
	}

	// Push-back moves along the surface, never through it.
	n := math3d.V3(1, 1, 0).Normalize()
	moved := pushBack(math3d.V3(0, 8, 8), n, regionSize)
	require.InDelta(t, 0, moved.Sub(math3d.V3(0, 8, 8)).Dot(n), 1e-12)
	require.False(t, math.IsNaN(moved.X))
}

func TestFaceMask(t *testing.T) {
	m := NegX.Bit().With(PosZ)
	require.True(t, m.Has(NegX))
	require.True(t, m.Has(PosZ))
	require.False(t, m.Has(PosX))
	require.Equal(t, 2, m.Count())
	require.Equal(t, "-x,+z", m.String())
	require.Equal(t, "none", FaceMask(0).String())
	require.Equal(t, FaceMask(0x3F), AllFaces)

	for _, d := range Directions {
		require.Equal(t, d, Direction(d.Axis()*2+int(d)%2))
		require.Equal(t, int(d)%2 == 1, d.Positive())
	}
}
