// Package metrics exposes search statistics to Prometheus.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	astar "github.com/pdrpinto/gridastar"
)

// Search outcomes used as label values.
const (
	OutcomeFound   = "found"
	OutcomeNoPath  = "no_path"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Collector records one observation per search.
type Collector struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	duration prometheus.Histogram
	sessions prometheus.Gauge

	gatherer prometheus.Gatherer
}

// NewCollector creates the collectors and registers them on registry.
func NewCollector(registry *prometheus.Registry) *Collector {
	c := &Collector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridastar",
			Name:      "searches_total",
			Help:      "Searches by outcome",
		}, []string{"outcome"}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridastar",
			Name:      "search_expanded_nodes",
			Help:      "Nodes popped from the open list per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gridastar",
			Name:      "search_duration_seconds",
			Help:      "Wall time per search",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gridastar",
			Name:      "step_sessions",
			Help:      "Open step-by-step sessions",
		}),
		gatherer: registry,
	}
	registry.MustRegister(c.searches, c.expanded, c.duration, c.sessions)
	return c
}

// Outcome maps a search error to its label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, astar.ErrNoPath):
		return OutcomeNoPath
	case errors.Is(err, astar.ErrInvalidInput):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}

// Observe records a finished search.
func (c *Collector) Observe(result astar.Result, err error, elapsed time.Duration) {
	c.searches.WithLabelValues(Outcome(err)).Inc()
	if result.Expanded > 0 {
		c.expanded.Observe(float64(result.Expanded))
	}
	c.duration.Observe(elapsed.Seconds())
}

// SessionOpened increments the open sessions gauge.
func (c *Collector) SessionOpened() { c.sessions.Inc() }

// SessionClosed decrements the open sessions gauge.
func (c *Collector) SessionClosed() { c.sessions.Dec() }

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// Search runs astar.Search and records it.
func (c *Collector) Search(grid astar.Grid, start, goal astar.Point, options ...astar.Option) (astar.Result, error) {
	began := time.Now()
	result, err := astar.Search(grid, start, goal, options...)
	c.Observe(result, err, time.Since(began))
	return result, err
}
