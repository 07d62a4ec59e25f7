// SPDX-License-Identifier: MIT

// Package metrics exposes solver progress as Prometheus collectors.
//
// A Collector owns a private registry, so tests and repeated runs never
// collide on the default registerer. It satisfies pagerank.Observer and can
// dump its state in the node_exporter textfile format.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/stochrank/pagerank"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "stochrank"

var _ pagerank.Observer = (*Collector)(nil)

// Collector holds the stochrank Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	Sweeps       prometheus.Counter
	MaxDelta     prometheus.Gauge
	Iterations   prometheus.Histogram
	Runs         *prometheus.CounterVec
	SolveSeconds prometheus.Histogram
	BuildSeconds prometheus.Histogram
	Nodes        prometheus.Gauge
}

// NewCollector creates and registers all metrics under namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		Sweeps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solver_sweeps_total",
			Help:      "Total number of power-iteration sweeps",
		}),
		MaxDelta: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "solver_max_delta",
			Help:      "Largest per-node rank change of the latest sweep",
		}),
		Iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solver_iterations",
			Help:      "Sweeps needed per solve",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 15),
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solver_runs_total",
			Help:      "Total number of solves by outcome",
		}, []string{"converged"}),
		SolveSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_seconds",
			Help:      "Wall time of the power iteration",
			Buckets:   prometheus.DefBuckets,
		}),
		BuildSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_seconds",
			Help:      "Wall time of transition matrix synthesis",
			Buckets:   prometheus.DefBuckets,
		}),
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes",
			Help:      "Number of nodes in the latest run",
		}),
	}

	registry.MustRegister(
		c.Sweeps,
		c.MaxDelta,
		c.Iterations,
		c.Runs,
		c.SolveSeconds,
		c.BuildSeconds,
		c.Nodes,
	)

	return c
}

// Registry returns the private registry, e.g. for promhttp.HandlerFor.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveSweep implements pagerank.Observer.
func (c *Collector) ObserveSweep(_ int, maxDelta float64) {
	c.Sweeps.Inc()
	c.MaxDelta.Set(maxDelta)
}

// ObserveSolve implements pagerank.Observer.
func (c *Collector) ObserveSolve(iterations int, converged bool, elapsed time.Duration) {
	c.Iterations.Observe(float64(iterations))
	c.Runs.WithLabelValues(strconv.FormatBool(converged)).Inc()
	c.SolveSeconds.Observe(elapsed.Seconds())
}

// ObserveBuild records matrix synthesis of an n-node graph.
func (c *Collector) ObserveBuild(n int, elapsed time.Duration) {
	c.Nodes.Set(float64(n))
	c.BuildSeconds.Observe(elapsed.Seconds())
}

// WriteTextfile dumps all metrics to path in the text exposition format.
// The write is atomic (temp file plus rename).
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
