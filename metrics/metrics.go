// Package metrics exposes Prometheus collectors for registry operations.
//
// Collectors live on a private registry so tests and repeated sessions never
// collide with the global default registerer. The CLI can dump the registry in
// the node_exporter textfile format on exit.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "roadledger"

// Operation results.
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

// Recorder records operation outcomes and graph sizes.
type Recorder struct {
	registry *prometheus.Registry

	operations       *prometheus.CounterVec
	snapshotFailures prometheus.Counter
	cities           prometheus.Gauge
	roads            prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Operator commands handled, by operation and result.",
		}, []string{"op", "result"}),
		snapshotFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_failures_total",
			Help:      "Snapshot saves that returned an error.",
		}),
		cities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cities",
			Help:      "Registered cities.",
		}),
		roads: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "roads",
			Help:      "Existing roads.",
		}),
	}
	r.registry.MustRegister(r.operations, r.snapshotFailures, r.cities, r.roads)

	return r
}

// Operation counts one command outcome.
func (r *Recorder) Operation(op string, err error) {
	if r == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultFailed
	}
	r.operations.WithLabelValues(op, result).Inc()
}

// SnapshotFailed counts one failed snapshot save.
func (r *Recorder) SnapshotFailed() {
	if r == nil {
		return
	}
	r.snapshotFailures.Inc()
}

// Size records the current graph size.
func (r *Recorder) Size(cities, roads int) {
	if r == nil {
		return
	}
	r.cities.Set(float64(cities))
	r.roads.Set(float64(roads))
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteTextfile writes all collectors to path in the Prometheus text format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// OperationCounter returns the counter for one op/result pair.
func (r *Recorder) OperationCounter(op, result string) prometheus.Counter {
	return r.operations.WithLabelValues(op, result)
}

// SnapshotFailures returns the snapshot failure counter.
func (r *Recorder) SnapshotFailures() prometheus.Counter { return r.snapshotFailures }

// CitiesGauge returns the city gauge.
func (r *Recorder) CitiesGauge() prometheus.Gauge { return r.cities }

// RoadsGauge returns the road gauge.
func (r *Recorder) RoadsGauge() prometheus.Gauge { return r.roads }
