// Package metrics exposes solver progress as Prometheus collectors.
//
// The lvcolor command is short-lived, so metrics are not served over HTTP;
// WriteTextfile dumps the registry in the text exposition format for the
// node-exporter textfile collector.
package metrics

import (
	"strconv"
	"time"

	"github.com/katalvlaran/lvcolor/swarm"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the solver metrics of one process.
type Collector struct {
	registry *prometheus.Registry

	// Swarm generation metrics
	Generations  prometheus.Counter
	Improvements prometheus.Counter
	Restarts     prometheus.Counter
	BestFitness  prometheus.Gauge

	// Per-solve metrics
	Solves        *prometheus.CounterVec
	SolveDuration *prometheus.HistogramVec
}

// NewCollector creates a collector with its own registry.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	generations := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "swarm",
			Name:      "generations_total",
			Help:      "Total number of completed swarm generations",
		},
	)

	improvements := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "swarm",
			Name:      "improvements_total",
			Help:      "Generations in which the global best strictly improved",
		},
	)

	restarts := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "swarm",
			Name:      "restarts_total",
			Help:      "Particle moves that fell back to a random restart",
		},
	)

	bestFitness := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "swarm",
			Name:      "best_fitness",
			Help:      "Global best fitness after the latest generation",
		},
	)

	solves := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Total number of solves",
		},
		[]string{"algorithm", "solved"},
	)

	solveDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Solve duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"algorithm"},
	)

	registry.MustRegister(
		generations,
		improvements,
		restarts,
		bestFitness,
		solves,
		solveDuration,
	)

	return &Collector{
		registry:      registry,
		Generations:   generations,
		Improvements:  improvements,
		Restarts:      restarts,
		BestFitness:   bestFitness,
		Solves:        solves,
		SolveDuration: solveDuration,
	}
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveGeneration records one swarm barrier; pass it to swarm.WithObserver.
func (c *Collector) ObserveGeneration(g swarm.Generation) {
	c.Generations.Inc()
	if g.Improved {
		c.Improvements.Inc()
	}
	c.Restarts.Add(float64(g.Restarts))
	c.BestFitness.Set(float64(g.BestFitness))
}

// ObserveSolve records the outcome of one solve.
func (c *Collector) ObserveSolve(algorithm string, fitness int, elapsed time.Duration) {
	c.Solves.WithLabelValues(algorithm, strconv.FormatBool(fitness == 0)).Inc()
	c.SolveDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// WriteTextfile writes the registry to path in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
