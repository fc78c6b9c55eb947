// Package terrain streams meshed regions around a moving viewer. It keeps a
// cache of density fields and meshes per region and only generates what the
// current octree leaf set is missing.
package terrain

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/google/uuid"

	"github.com/taigrr/terrace/pkg/config"
	"github.com/taigrr/terrace/pkg/density"
	"github.com/taigrr/terrace/pkg/math3d"
	"github.com/taigrr/terrace/pkg/models"
	"github.com/taigrr/terrace/pkg/octree"
	"github.com/taigrr/terrace/pkg/transvoxel"
)

// Manager owns every region and decides which ones need work. It is not
// safe for concurrent use: Update, Poll and Wait are meant to be called from
// one goroutine, which is also the one results are applied on.
type Manager struct {
	cfg        *config.Config
	producer   density.Producer
	policy     octree.Policy
	policyName string
	sched      *scheduler

	regions map[octree.Bounds]*Region
	leaves  []octree.Bounds
	tree    *octree.Tree

	viewer    math3d.Vec3
	hasViewer bool
	pending   *batch
	stats     Stats
}

// Stats summarizes the work done by a Manager.
type Stats struct {
	Batches         int           `json:"batches"`
	LastBatch       string        `json:"last_batch,omitempty"`
	LastBatchTime   time.Duration `json:"last_batch_time"`
	FieldsGenerated int           `json:"fields_generated"`
	MeshesGenerated int           `json:"meshes_generated"`
	CacheHits       int           `json:"cache_hits"`
	Failures        int           `json:"failures"`
	Regions         int           `json:"regions"`
	Visible         int           `json:"visible"`
	Triangles       int           `json:"triangles"`
	Vertices        int           `json:"vertices"`
}

// Option customizes a Manager.
type Option func(*Manager)

// WithPolicy overrides the subdivision policy named in the configuration.
func WithPolicy(p octree.Policy) Option {
	return func(m *Manager) {
		m.policy = p
		m.policyName = fmt.Sprintf("%T", p)
	}
}

// NewManager creates a manager that samples regions from producer.
func NewManager(cfg *config.Config, producer density.Producer, opts ...Option) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.New("creating terrain manager failed").Wrap(err)
	}
	policy, err := octree.ParsePolicy(cfg.Streaming.Policy)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		cfg:        cfg,
		producer:   producer,
		policy:     policy,
		policyName: cfg.Streaming.Policy,
		regions:    make(map[octree.Bounds]*Region),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.sched = newScheduler(cfg.Streaming.Workers, cfg.Streaming.BatchSize)
	return m, nil
}

// Close waits for the pending batch, if any, and stops the workers. The
// pending results are discarded.
func (m *Manager) Close() {
	if m.pending != nil {
		<-m.pending.done
		m.pending = nil
	}
	m.sched.stop()
}

// Update computes the leaf set for the viewer position and schedules the
// regions it is missing. It returns false without doing anything while a
// batch is pending or when the viewer moved less than the configured
// threshold since the last accepted update. Leaves with a mesh cached for
// their face mask become visible at once; when every leaf is cached the new
// leaf set is applied immediately.
func (m *Manager) Update(viewer math3d.Vec3) (bool, error) {
	if math.IsNaN(viewer.X+viewer.Y+viewer.Z) || math.IsInf(viewer.X+viewer.Y+viewer.Z, 0) {
		return false, errors.New("invalid viewer position").
			WithTag("viewer", viewer)
	}
	if m.pending != nil {
		return false, nil
	}
	if m.hasViewer && viewer.Distance(m.viewer) < m.cfg.Streaming.ViewerMoveThreshold {
		return false, nil
	}
	m.viewer = viewer
	m.hasViewer = true

	regionSize := m.cfg.Terrain.RegionSize
	root := octree.Around(viewer, float64(regionSize), m.cfg.RootSize())
	tree := octree.Build(root, viewer, m.cfg.Streaming.OctreeDepth, m.policy)

	b := &batch{
		id:      uuid.New(),
		tree:    tree,
		leaves:  tree.Leaves(),
		started: time.Now(),
		done:    make(chan struct{}),
	}

	for _, leaf := range b.leaves {
		r, ok := m.regions[leaf]
		if !ok {
			r = newRegion(leaf, regionSize)
			m.regions[leaf] = r
		}

		mask := tree.FaceMask(leaf)
		if _, ok := r.CachedMesh(mask); ok {
			r.Finalize(mask)
			r.setVisible(true)
			m.stats.CacheHits++
			meshCacheHits.Inc()
			continue
		}
		b.jobs = append(b.jobs, job{
			region: r,
			mask:   mask,
			field:  r.Field(),
			scale:  r.Scale(),
			origin: r.Origin(),
		})
	}

	if len(b.jobs) == 0 {
		close(b.done)
		m.apply(b)
		return true, nil
	}
	m.refreshStats()

	logs.WithTag("batch", b.id).
		WithTag("jobs", len(b.jobs)).
		WithTag("leaves", len(b.leaves)).
		Debug("scheduling region batch")

	m.pending = b
	b.results = make([]result, len(b.jobs))
	m.sched.run(len(b.jobs), func(i int) {
		b.results[i] = m.generate(b.jobs[i])
	}, b.done)
	return true, nil
}

// Pending reports whether a batch is being generated.
func (m *Manager) Pending() bool {
	return m.pending != nil
}

// Poll applies the pending batch if it has finished. It never blocks and
// reports whether a batch was applied.
func (m *Manager) Poll() bool {
	if m.pending == nil {
		return false
	}
	select {
	case <-m.pending.done:
	default:
		return false
	}

	b := m.pending
	m.pending = nil
	m.apply(b)
	return true
}

// Wait blocks until the pending batch has finished and applies it. It
// returns the context error if ctx ends first; the batch then stays
// pending.
func (m *Manager) Wait(ctx context.Context) error {
	if m.pending == nil {
		return nil
	}
	select {
	case <-m.pending.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	b := m.pending
	m.pending = nil
	m.apply(b)
	return nil
}

// generate runs on a worker. It only reads the job and returns a result. A
// panicking producer or extraction becomes the result's error.
func (m *Manager) generate(j job) (res result) {
	res = result{region: j.region, mask: j.mask}
	defer func() {
		if r := recover(); r != nil {
			err := errors.Newf("generating region panicked: %v", r).
				WithTag("bounds", j.region.Bounds())
			res = result{region: j.region, mask: j.mask, err: err}
		}
	}()

	field := j.field
	if field == nil {
		n := density.RequiredSize(m.cfg.Terrain.RegionSize)
		field = m.producer.Sample(n, n, n, j.scale, j.origin, m.cfg.Noise)
		if err := field.Validate(m.cfg.Terrain.RegionSize); err != nil {
			res.err = errors.New("density producer returned an unusable field").
				WithTag("bounds", j.region.Bounds()).
				Wrap(err)
			return res
		}
		res.field = field
	}

	res.mesh = transvoxel.ExtractSurface(field, m.cfg.Terrain.RegionSize, j.mask)
	res.mesh.Name = regionName(j.region.Bounds(), j.mask)
	return res
}

func (m *Manager) apply(b *batch) {
	visible := make(map[octree.Bounds]bool, len(b.leaves))
	for _, leaf := range b.leaves {
		visible[leaf] = true
	}

	for _, res := range b.results {
		r := res.region
		if res.err != nil {
			logs.Error(res.err)
			m.stats.Failures++
			regionErrors.Inc()
			continue
		}
		if res.field != nil {
			r.SetField(res.field)
			m.stats.FieldsGenerated++
			instrumentGenerated(kindField)
		}
		r.SetMesh(res.mask, res.mesh)
		m.stats.MeshesGenerated++
		instrumentGenerated(kindMesh)
		r.Finalize(res.mask)
	}

	hidden := 0
	for bounds, r := range m.regions {
		show := visible[bounds] && r.Mesh() != nil
		if r.Visible() && !show {
			hidden++
		}
		r.setVisible(show)
	}

	m.tree = b.tree
	m.leaves = b.leaves
	m.stats.Batches++
	m.stats.LastBatch = b.id.String()
	m.stats.LastBatchTime = time.Since(b.started)
	m.refreshStats()

	instrumentBatch(m.policyName, b.started)
	visibleRegions.Set(float64(m.stats.Visible))

	logs.WithTag("batch", b.id).
		WithTag("visible", m.stats.Visible).
		WithTag("hidden", hidden).
		WithTag("duration", m.stats.LastBatchTime.String()).
		Info("region batch applied")
}

func (m *Manager) refreshStats() {
	m.stats.Regions = len(m.regions)
	m.stats.Visible = 0
	m.stats.Triangles = 0
	m.stats.Vertices = 0
	for _, r := range m.regions {
		if !r.Visible() {
			continue
		}
		m.stats.Visible++
		m.stats.Triangles += r.Mesh().TriangleCount()
		m.stats.Vertices += r.Mesh().VertexCount()
	}
}

// Visible returns the visible regions in leaf order. While a batch is
// pending, cached leaves of the new set that are not in the applied one
// follow in the new set's order.
func (m *Manager) Visible() []*Region {
	var regions []*Region
	seen := make(map[octree.Bounds]bool, len(m.leaves))
	collect := func(leaves []octree.Bounds) {
		for _, leaf := range leaves {
			if seen[leaf] {
				continue
			}
			seen[leaf] = true
			if r := m.regions[leaf]; r != nil && r.Visible() {
				regions = append(regions, r)
			}
		}
	}

	collect(m.leaves)
	if m.pending != nil {
		collect(m.pending.leaves)
	}
	return regions
}

// Region returns the region with the given bounds.
func (m *Manager) Region(b octree.Bounds) (*Region, bool) {
	r, ok := m.regions[b]
	return r, ok
}

// Tree returns the octree of the last applied batch, or nil.
func (m *Manager) Tree() *octree.Tree {
	return m.tree
}

// Stats returns a snapshot of the manager counters.
func (m *Manager) Stats() Stats {
	return m.stats
}

// Parts returns the placed meshes of every visible region.
func (m *Manager) Parts() []models.Part {
	var parts []models.Part
	for _, r := range m.Visible() {
		parts = append(parts, models.Part{
			Mesh:      r.Mesh(),
			Placement: r.Placement(),
		})
	}
	return parts
}

func regionName(b octree.Bounds, mask transvoxel.FaceMask) string {
	lo := b.Min()
	return fmt.Sprintf("region_%g_%g_%g_%g_%02x", lo.X, lo.Y, lo.Z, b.Size, uint8(mask))
}

type batch struct {
	id      uuid.UUID
	tree    *octree.Tree
	leaves  []octree.Bounds
	jobs    []job
	results []result
	started time.Time
	done    chan struct{}
}

type job struct {
	region *Region
	mask   transvoxel.FaceMask
	field  *density.Field
	scale  float64
	origin math3d.Vec3
}

type result struct {
	region *Region
	mask   transvoxel.FaceMask
	field  *density.Field
	mesh   *models.Mesh
	err    error
}
