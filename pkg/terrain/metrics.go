package terrain

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	kindLabel   = "kind"
	policyLabel = "policy"

	kindField = "field"
	kindMesh  = "mesh"
)

var (
	regionsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "terrace_regions_generated",
		Help: "The number of density fields and meshes generated for regions.",
	}, []string{
		kindLabel,
	})

	meshCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrace_mesh_cache_hits",
		Help: "The number of leaves served from a mesh cached for their face mask.",
	})

	regionErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrace_region_errors",
		Help: "The number of regions whose generation failed.",
	})

	batchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "terrace_batch_duration_seconds",
		Help:    "The time from scheduling a region batch to its completion.",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
	}, []string{
		policyLabel,
	})

	visibleRegions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "terrace_visible_regions",
		Help: "The number of regions in the current leaf set.",
	})
)

func instrumentGenerated(kind string) {
	regionsGenerated.With(prometheus.Labels{
		kindLabel: kind,
	}).Inc()
}

func instrumentBatch(policy string, start time.Time) {
	batchDuration.With(prometheus.Labels{
		policyLabel: policy,
	}).Observe(time.Since(start).Seconds())
}
