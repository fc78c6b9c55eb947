package density

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taigrr/terrace/pkg/math3d"
)

func TestFieldIndexLayout(t *testing.T) {
	f := NewField(4, 3, 2)
	require.Len(t, f.Values, 24)
	require.Equal(t, 0, f.Index(0, 0, 0))
	require.Equal(t, 1, f.Index(1, 0, 0))
	require.Equal(t, 4, f.Index(0, 1, 0))
	require.Equal(t, 12, f.Index(0, 0, 1))
	require.Equal(t, 23, f.Index(3, 2, 1))

	f.Set(3, 2, 1, -5)
	require.Equal(t, -5.0, f.At(3, 2, 1))
	require.Equal(t, -5.0, f.Values[23])
}

func TestFieldOutOfRangePanics(t *testing.T) {
	f := NewField(2, 2, 2)
	require.Panics(t, func() { f.At(2, 0, 0) })
	require.Panics(t, func() { f.At(0, -1, 0) })
	require.Panics(t, func() { f.Set(0, 0, 5, 1) })
}

func TestFieldValidate(t *testing.T) {
	require.NoError(t, NewField(19, 19, 19).Validate(16))
	require.NoError(t, NewField(20, 19, 21).Validate(16))
	require.Error(t, NewField(18, 19, 19).Validate(16))
	require.Error(t, NewField(19, 19, 17).Validate(16))

	var missing *Field
	require.Error(t, missing.Validate(16))

	broken := NewField(19, 19, 19)
	broken.Values = broken.Values[:10]
	require.Error(t, broken.Validate(16))
}

func TestFieldUniform(t *testing.T) {
	f := NewField(3, 3, 3)
	f.Fill(func(x, y, z int) float64 { return 1 })
	require.True(t, f.Uniform())

	f.Set(1, 1, 1, -1)
	require.False(t, f.Uniform())

	f.Fill(func(x, y, z int) float64 { return -2 })
	require.True(t, f.Uniform())
}

func TestFuncSampleLattice(t *testing.T) {
	var seen []math3d.Vec3
	fn := Func(func(p math3d.Vec3) float64 {
		seen = append(seen, p)
		return p.X + 10*p.Y + 100*p.Z
	})

	f := fn.Sample(2, 2, 2, 4, math3d.V3(-4, 0, 8), DefaultParams())
	require.Len(t, seen, 8)
	require.Equal(t, -4.0+0+100*8, f.At(0, 0, 0))
	require.Equal(t, 0.0+10*4+100*12, f.At(1, 1, 1))
}

func TestPlaneAndSphere(t *testing.T) {
	plane := Plane(8)
	require.Less(t, plane(math3d.V3(0, 7, 0)), 0.0)
	require.Greater(t, plane(math3d.V3(0, 9, 0)), 0.0)

	sphere := Sphere(math3d.V3(1, 1, 1), 2)
	require.InDelta(t, -2, sphere(math3d.V3(1, 1, 1)), 1e-12)
	require.InDelta(t, 1, sphere(math3d.V3(4, 1, 1)), 1e-12)
}

func TestTerrainDeterministic(t *testing.T) {
	params := DefaultParams()
	params.Seed = 42

	a := NewTerrain().Sample(8, 8, 8, 2, math3d.V3(-2, -2, -2), params)
	b := NewTerrain().Sample(8, 8, 8, 2, math3d.V3(-2, -2, -2), params)
	require.Equal(t, a.Values, b.Values)

	params.Seed = 43
	c := NewTerrain().Sample(8, 8, 8, 2, math3d.V3(-2, -2, -2), params)
	require.NotEqual(t, a.Values, c.Values)
}

func TestTerrainHasGroundAndSky(t *testing.T) {
	params := DefaultParams()
	params.Caves = 0

	f := NewTerrain().Sample(4, 4, 4, 64, math3d.V3(0, -64, 0), params)

	// Far below the peak amplitude is solid, far above is air.
	require.Less(t, f.At(0, 0, 0), 0.0)
	require.Greater(t, f.At(0, 3, 0), 0.0)
}
