// Package metrics exposes Prometheus metrics for alignment requests.
//
// The Collector owns a private registry, so several collectors (one per test,
// one per server) never collide on registration.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "seqalign"

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Collector records alignment counts, latencies, matrix sizes and scores.
type Collector struct {
	registry *prometheus.Registry

	alignments *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	cells      *prometheus.HistogramVec
	scores     *prometheus.HistogramVec
}

// NewCollector creates a Collector registered on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		alignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "alignments_total",
			Help:      "Alignments performed, by mode and outcome.",
		}, []string{"mode", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "alignment_duration_seconds",
			Help:      "Wall time of matrix build plus traceback.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs .. ~2.6s
		}, []string{"mode"}),
		cells: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "matrix_cells",
			Help:      "Score matrix size, (m+1)*(n+1).",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 9), // 1 .. 1e8
		}, []string{"mode"}),
		scores: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "alignment_score",
			Help:      "Optimal alignment scores.",
			Buckets:   []float64{-1000, -100, -10, 0, 10, 100, 1000, 10000},
		}, []string{"mode"}),
	}
	c.registry.MustRegister(c.alignments, c.duration, c.cells, c.scores)

	return c
}

// Observe records one alignment. On err != nil only the error counter moves.
func (c *Collector) Observe(mode string, cells int, score int64, d time.Duration, err error) {
	if err != nil {
		c.alignments.WithLabelValues(mode, OutcomeError).Inc()
		return
	}
	c.alignments.WithLabelValues(mode, OutcomeOK).Inc()
	c.duration.WithLabelValues(mode).Observe(d.Seconds())
	c.cells.WithLabelValues(mode).Observe(float64(cells))
	c.scores.WithLabelValues(mode).Observe(float64(score))
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
