// Package metrics provides Prometheus counters for the coaching core.
// A custom registry is used so the default Go collectors do not leak in.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "pitchcoach"
	subsystem = "core"
)

// registry keeps our metrics isolated from the global default registry.
var registry = prometheus.NewRegistry()

var (
	// PitchesProcessed counts pitch events routed through the dispatcher,
	// labelled by result ("strike" or "ball").
	PitchesProcessed = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "pitches_processed_total",
		Help:      "Total pitch events processed, by result.",
	}, []string{"result"})

	// Milestones counts scores persisted to the ledger, labelled by game.
	Milestones = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "milestones_total",
		Help:      "Total milestone scores persisted, by game.",
	}, []string{"game"})

	// LedgerWrites counts successful ledger flushes to disk.
	LedgerWrites = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "ledger_writes_total",
		Help:      "Total successful ledger writes.",
	})

	// LedgerWriteFailures counts ledger flushes that failed and were
	// degraded to in-memory state.
	LedgerWriteFailures = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "ledger_write_failures_total",
		Help:      "Total failed ledger writes.",
	})
)

// Registry exposes the metrics registry for scraping by an embedding host.
func Registry() *prometheus.Registry {
	return registry
}

// RecordPitch increments the pitch counter for one event.
func RecordPitch(strike bool) {
	result := "ball"
	if strike {
		result = "strike"
	}
	PitchesProcessed.WithLabelValues(result).Inc()
}
