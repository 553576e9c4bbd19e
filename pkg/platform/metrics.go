package platform

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts the outcome of filesystem work done by a Platform.
type Metrics struct {
	FilesRemoved      prometheus.Counter
	DirsRemoved       prometheus.Counter
	RemoveFailures    prometheus.Counter
	TypeQueryFailures prometheus.Counter
	ResolveHits       *prometheus.CounterVec
	ResolveMisses     prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg when it is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FilesRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "platform",
			Subsystem: "fs",
			Name:      "files_removed_total",
			Help:      "Files deleted by recursive directory removal.",
		}),
		DirsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "platform",
			Subsystem: "fs",
			Name:      "dirs_removed_total",
			Help:      "Directories deleted by recursive directory removal.",
		}),
		RemoveFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "platform",
			Subsystem: "fs",
			Name:      "remove_failures_total",
			Help:      "Entries recursive directory removal failed to delete.",
		}),
		TypeQueryFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "platform",
			Subsystem: "fs",
			Name:      "type_query_failures_total",
			Help:      "Entries skipped because their type could not be determined.",
		}),
		ResolveHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "platform",
			Subsystem: "resolve",
			Name:      "hits_total",
			Help:      "Successful read path resolutions by matching scope token.",
		}, []string{"scope"}),
		ResolveMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "platform",
			Subsystem: "resolve",
			Name:      "misses_total",
			Help:      "Read path resolutions that found no file.",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			m.FilesRemoved,
			m.DirsRemoved,
			m.RemoveFailures,
			m.TypeQueryFailures,
			m.ResolveHits,
			m.ResolveMisses,
		)
	}
	return m
}
