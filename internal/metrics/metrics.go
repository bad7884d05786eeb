// Package metrics exposes solver activity to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"svw.info/fitcube/internal/ports"
)

// Outcomes recorded by ObserveSolve.
const (
	OutcomeSolved     = "solved"
	OutcomeNoSolution = "no_solution"
	OutcomeError      = "error"
)

// Metrics implements ports.Recorder.
type Metrics struct {
	solves   *prometheus.CounterVec
	nodes    prometheus.Histogram
	duration prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fitcube_solves_total",
			Help: "Solver runs by outcome.",
		}, []string{"outcome"}),
		nodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fitcube_search_nodes",
			Help:    "Search nodes visited per solver run.",
			Buckets: prometheus.ExponentialBuckets(16, 4, 8),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fitcube_solve_duration_seconds",
			Help:    "Wall time of solver runs.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.solves, m.nodes, m.duration)
	return m
}

func (m *Metrics) ObserveSolve(outcome string, st ports.Stats) {
	m.solves.WithLabelValues(outcome).Inc()
	m.nodes.Observe(float64(st.Nodes))
	m.duration.Observe(st.Duration.Seconds())
}
