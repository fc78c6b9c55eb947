package terrain

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taigrr/terrace/pkg/config"
	"github.com/taigrr/terrace/pkg/density"
	"github.com/taigrr/terrace/pkg/math3d"
	"github.com/taigrr/terrace/pkg/models"
	"github.com/taigrr/terrace/pkg/octree"
	"github.com/taigrr/terrace/pkg/transvoxel"
)

// countingProducer records how often each region origin was sampled. When
// gate is set, every call blocks until it is closed.
type countingProducer struct {
	fn   density.Func
	gate chan struct{}

	mu    sync.Mutex
	calls map[math3d.Vec3]int
}

func newCountingProducer() *countingProducer {
	return &countingProducer{
		fn:    density.Plane(1.3),
		calls: make(map[math3d.Vec3]int),
	}
}

func (p *countingProducer) Sample(width, height, depth int, scale float64, origin math3d.Vec3, params density.Params) *density.Field {
	if p.gate != nil {
		<-p.gate
	}
	p.mu.Lock()
	p.calls[origin]++
	p.mu.Unlock()
	return p.fn.Sample(width, height, depth, scale, origin, params)
}

func (p *countingProducer) total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.calls {
		n += c
	}
	return n
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Terrain.RegionSize = 8
	cfg.Streaming.RenderDistance = 4
	cfg.Streaming.OctreeDepth = 2
	cfg.Streaming.ViewerMoveThreshold = 0
	cfg.Streaming.Workers = 2
	cfg.Streaming.BatchSize = 5
	return cfg
}

func newTestManager(t *testing.T, p density.Producer) *Manager {
	t.Helper()
	m, err := NewManager(testConfig(), p)
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

func update(t *testing.T, m *Manager, viewer math3d.Vec3) {
	t.Helper()
	ok, err := m.Update(viewer)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, m.Wait(context.Background()))
	require.False(t, m.Pending())
}

var (
	viewerA = math3d.V3(-3, -3, -3)
	viewerB = math3d.V3(3, -3, -3)
)

func TestManagerFirstUpdate(t *testing.T) {
	p := newCountingProducer()
	m := newTestManager(t, p)
	update(t, m, viewerA)

	stats := m.Stats()
	visible := m.Visible()
	require.Len(t, visible, 36)
	require.Equal(t, 36, stats.Visible)
	require.Equal(t, 36, stats.Regions)
	require.Equal(t, 36, stats.FieldsGenerated)
	require.Equal(t, 36, stats.MeshesGenerated)
	require.Equal(t, 36, p.total())
	require.Equal(t, 1, stats.Batches)
	require.NotEmpty(t, stats.LastBatch)
	require.NotZero(t, stats.Triangles)

	require.Equal(t, m.Tree().Leaves()[0], visible[0].Bounds())
	for _, r := range visible {
		require.NotNil(t, r.Field())
		require.NotNil(t, r.Mesh())
		require.NoError(t, r.Mesh().Validate())
		require.Equal(t, m.Tree().FaceMask(r.Bounds()), r.Mask())
	}
	require.Len(t, m.Parts(), 36)
}

func TestManagerMoveThreshold(t *testing.T) {
	cfg := testConfig()
	cfg.Streaming.ViewerMoveThreshold = 5
	m, err := NewManager(cfg, newCountingProducer())
	require.NoError(t, err)
	t.Cleanup(m.Close)

	update(t, m, viewerA)

	ok, err := m.Update(viewerA.Add(math3d.V3(4, 0, 0)))
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 1, m.Stats().Batches)

	update(t, m, viewerA.Add(math3d.V3(6, 0, 0)))
	require.Equal(t, 2, m.Stats().Batches)
}

func TestManagerRefusesWhilePending(t *testing.T) {
	p := newCountingProducer()
	p.gate = make(chan struct{})
	m := newTestManager(t, p)

	ok, err := m.Update(viewerA)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, m.Pending())

	ok, err = m.Update(viewerB)
	require.NoError(t, err)
	require.False(t, ok)

	require.False(t, m.Poll())
	require.Empty(t, m.Visible())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, m.Wait(ctx), context.DeadlineExceeded)
	require.True(t, m.Pending())

	close(p.gate)
	require.Eventually(t, m.Poll, 5*time.Second, time.Millisecond)
	require.False(t, m.Pending())
	require.Len(t, m.Visible(), 36)
}

func TestManagerReusesFieldsAndMeshes(t *testing.T) {
	p := newCountingProducer()
	m := newTestManager(t, p)

	update(t, m, viewerA)
	leavesA := m.Tree().Leaves()
	update(t, m, viewerB)

	stats := m.Stats()
	// 18 leaves are shared by both sets; 6 of them keep their face mask.
	require.Equal(t, 6, stats.CacheHits)
	require.Equal(t, 36+18, stats.FieldsGenerated)
	require.Equal(t, stats.FieldsGenerated, p.total())
	require.Equal(t, 36+18+12, stats.MeshesGenerated)

	// Regions kept across both leaf sets but with a new face mask were
	// meshed twice from a single field.
	var remeshed []*Region
	for _, r := range m.Visible() {
		if r.MeshCount() == 2 {
			remeshed = append(remeshed, r)
			require.Equal(t, 1, p.calls[r.Origin()])
		}
	}
	require.Len(t, remeshed, 12)

	// Leaves of the first set that are not in the second are hidden.
	hidden := 0
	for _, b := range leavesA {
		r, ok := m.Region(b)
		require.True(t, ok)
		if !r.Visible() {
			hidden++
		}
	}
	require.Equal(t, 18, hidden)
	require.Equal(t, 36, m.Stats().Visible)

	// Every leaf of the first set is cached for its mask now, so returning
	// applies at once without generating anything.
	meshes := m.Stats().MeshesGenerated
	ok, err := m.Update(viewerA)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, m.Pending())
	require.Equal(t, meshes, m.Stats().MeshesGenerated)
	require.Equal(t, 6+36, m.Stats().CacheHits)
	require.Equal(t, leavesA, m.Tree().Leaves())
}

func TestManagerShowsCachedLeavesWhilePending(t *testing.T) {
	p := newCountingProducer()
	m := newTestManager(t, p)

	update(t, m, viewerA)
	update(t, m, viewerB)
	require.Equal(t, 6, m.Stats().CacheHits)

	// Around viewerC, 20 of 50 leaves are cached for their mask; 8 of them
	// were hidden when the leaf set moved to viewerB.
	viewerC := math3d.V3(-9, -3, -3)
	p.gate = make(chan struct{})
	ok, err := m.Update(viewerC)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, m.Pending())

	stats := m.Stats()
	require.Equal(t, 6+20, stats.CacheHits)
	require.Equal(t, 36+8, stats.Visible)
	require.Len(t, m.Visible(), 36+8)

	close(p.gate)
	require.NoError(t, m.Wait(context.Background()))

	stats = m.Stats()
	require.Equal(t, 6+20, stats.CacheHits)
	require.Equal(t, 36+18+12+30, stats.MeshesGenerated)
	require.Len(t, m.Tree().Leaves(), 50)
	require.Len(t, m.Visible(), 50)
	for _, r := range m.Visible() {
		require.Equal(t, m.Tree().FaceMask(r.Bounds()), r.Mask())
	}
}

func TestManagerRejectsInvalidViewer(t *testing.T) {
	m := newTestManager(t, newCountingProducer())
	_, err := m.Update(math3d.V3(0, math.NaN(), 0))
	require.Error(t, err)
}

type shortProducer struct{}

func (shortProducer) Sample(width, height, depth int, _ float64, _ math3d.Vec3, _ density.Params) *density.Field {
	return density.NewField(width-1, height, depth)
}

func TestManagerSkipsFailedRegions(t *testing.T) {
	m := newTestManager(t, shortProducer{})
	update(t, m, viewerA)

	require.Equal(t, 36, m.Stats().Failures)
	require.Empty(t, m.Visible())
}

type panickingProducer struct{}

func (panickingProducer) Sample(int, int, int, float64, math3d.Vec3, density.Params) *density.Field {
	panic("noise backend unavailable")
}

func TestManagerRecoversPanickingProducer(t *testing.T) {
	m := newTestManager(t, panickingProducer{})
	require.NotPanics(t, func() { update(t, m, viewerA) })

	require.Equal(t, 36, m.Stats().Failures)
	require.Zero(t, m.Stats().MeshesGenerated)
	require.Empty(t, m.Visible())
}

func TestNewManagerValidates(t *testing.T) {
	cfg := testConfig()
	cfg.Streaming.Policy = "spiral"
	_, err := NewManager(cfg, newCountingProducer())
	require.Error(t, err)
}

func TestWithPolicy(t *testing.T) {
	cfg := testConfig()
	m, err := NewManager(cfg, newCountingProducer(), WithPolicy(octree.BranchPolicy{}))
	require.NoError(t, err)
	t.Cleanup(m.Close)

	update(t, m, viewerA)
	require.Len(t, m.Visible(), 15)
}

func TestRegionFinalize(t *testing.T) {
	b := octree.Bounds{Center: math3d.V3(8, 8, 8), Size: 16}
	r := newRegion(b, 8)
	mask := transvoxel.PosX.Bit()

	require.Panics(t, func() { r.Finalize(mask) })

	r.SetField(density.NewField(11, 11, 11))
	require.Panics(t, func() { r.Finalize(mask) })

	mesh := models.NewMesh("r")
	r.SetMesh(mask, mesh)
	require.Nil(t, r.Mesh())
	r.Finalize(mask)
	require.Same(t, mesh, r.Mesh())
	require.Equal(t, mask, r.Mask())

	// The first field stays.
	first := r.Field()
	r.SetField(density.NewField(11, 11, 11))
	require.Same(t, first, r.Field())

	require.Equal(t, models.Placement{Position: math3d.V3(0, 0, 0), Scale: 2}, r.Placement())
	require.Equal(t, math3d.V3(-2, -2, -2), r.Origin())
}
