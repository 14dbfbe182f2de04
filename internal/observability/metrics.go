package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	// Registry holds the generator metrics. It is separate from the default
	// registry so a run can export exactly what it recorded.
	Registry = prometheus.NewRegistry()

	generatedMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "qmigen",
			Subsystem: "codegen",
			Name:      "messages_total",
			Help:      "Messages and indications emitted.",
		},
		[]string{"service", "kind"},
	)
	generatedTLVs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "qmigen",
			Subsystem: "codegen",
			Name:      "tlvs_total",
			Help:      "TLVs emitted across all bundles.",
		},
		[]string{"service"},
	)
	skippedItems = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "qmigen",
			Subsystem: "codegen",
			Name:      "skipped_total",
			Help:      "Messages and TLVs left out by the API version limit or the message filter.",
		},
		[]string{"service", "reason"},
	)
	generationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "qmigen",
			Subsystem: "codegen",
			Name:      "failures_total",
			Help:      "Generation failures by stage.",
		},
		[]string{"service", "stage"},
	)
	generationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "qmigen",
			Subsystem: "codegen",
			Name:      "duration_seconds",
			Help:      "Time spent generating one service.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		Registry.MustRegister(generatedMessages, generatedTLVs, skippedItems, generationFailures, generationDuration)
	})
}

// RecordMessage counts one emitted message with its TLVs.
func RecordMessage(service, kind string, tlvs int) {
	RegisterMetrics()
	generatedMessages.WithLabelValues(service, kind).Inc()
	generatedTLVs.WithLabelValues(service).Add(float64(tlvs))
}

func RecordSkipped(service, reason string) {
	RegisterMetrics()
	skippedItems.WithLabelValues(service, reason).Inc()
}

func RecordFailure(service, stage string) {
	RegisterMetrics()
	generationFailures.WithLabelValues(service, stage).Inc()
}

func RecordDuration(service string, d time.Duration) {
	RegisterMetrics()
	generationDuration.WithLabelValues(service).Observe(d.Seconds())
}

// WriteTextfile exports the registry in the node-exporter textfile format.
func WriteTextfile(path string) error {
	RegisterMetrics()
	return prometheus.WriteToTextfile(path, Registry)
}
