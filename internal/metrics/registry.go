package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/agbru/primecount/internal/worker"
)

const namespace = "primecount"

// Registry holds the Prometheus collectors for prime count runs. Each
// Registry owns its prometheus.Registry, so several can coexist in tests.
type Registry struct {
	reg             *prometheus.Registry
	runs            *prometheus.CounterVec
	matches         *prometheus.GaugeVec
	runDuration     *prometheus.HistogramVec
	workerDuration  *prometheus.HistogramVec
	workerItems     *prometheus.CounterVec
	workersInFlight prometheus.Gauge
}

// NewRegistry creates a registry with the run collectors and the Go
// runtime collector.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of completed runs by policy and status.",
		}, []string{"policy", "status"}),
		matches: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "matches",
			Help:      "Match count of the last successful run by policy.",
		}, []string{"policy"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of partition, fan-out and join.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
		}, []string{"policy"}),
		workerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "worker_duration_seconds",
			Help:      "Duration of individual worker tasks.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 18),
		}, []string{"policy"}),
		workerItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_items_total",
			Help:      "Items evaluated by workers.",
		}, []string{"policy"}),
		workersInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "workers_in_flight",
			Help:      "Workers currently evaluating their chunk.",
		}),
	}
	r.reg.MustRegister(
		r.runs, r.matches, r.runDuration, r.workerDuration, r.workerItems, r.workersInFlight,
		collectors.NewGoCollector(),
	)
	return r
}

// ObserveRun records the outcome of one run.
func (r *Registry) ObserveRun(policy string, matches int, elapsed time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	r.runs.WithLabelValues(policy, status).Inc()
	if err != nil {
		return
	}
	r.matches.WithLabelValues(policy).Set(float64(matches))
	r.runDuration.WithLabelValues(policy).Observe(elapsed.Seconds())
}

// WorkerObserver returns an observer recording worker events. Each report
// is labelled with the policy of the run it belongs to, so one observer can
// serve every run of a session. It is safe for concurrent use.
func (r *Registry) WorkerObserver() *WorkerObserver {
	return &WorkerObserver{
		inFlight: r.workersInFlight,
		duration: r.workerDuration,
		items:    r.workerItems,
	}
}

// WriteTextfile writes every collected metric to path in the text
// exposition format, as read by the node exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}

// WorkerObserver feeds worker lifecycle events into a Registry.
type WorkerObserver struct {
	inFlight prometheus.Gauge
	duration *prometheus.HistogramVec
	items    *prometheus.CounterVec
}

// WorkerStarted increments the in-flight gauge.
func (o *WorkerObserver) WorkerStarted(int, int) {
	o.inFlight.Inc()
}

// WorkerFinished records the worker's duration and item count.
func (o *WorkerObserver) WorkerFinished(r worker.Report) {
	o.inFlight.Dec()
	policy := r.Policy.String()
	o.duration.WithLabelValues(policy).Observe(r.Duration.Seconds())
	o.items.WithLabelValues(policy).Add(float64(r.Items))
}
