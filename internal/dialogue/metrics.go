package dialogue

import "github.com/prometheus/client_golang/prometheus"

var (
	turnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dialogue_turns_total",
			Help: "Total number of dialogue turns executed, by state",
		},
		[]string{"state"},
	)

	captureFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dialogue_capture_failures_total",
			Help: "Total number of failed or timed out speech captures",
		},
	)

	backendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dialogue_backend_call_duration_seconds",
			Help:    "Duration of remote service calls made by the dialogue",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)

	sessionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dialogue_sessions_total",
			Help: "Total number of dialogue sessions started",
		},
	)
)

// Collectors returns the dialogue metrics so the host process can register
// them on its own registry.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{turnsTotal, captureFailures, backendDuration, sessionsTotal}
}

// RegisterMetrics registers the dialogue metrics on the default registry.
func RegisterMetrics() {
	for _, c := range Collectors() {
		prometheus.MustRegister(c)
	}
}
