package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	framesRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "appshot",
			Subsystem: "export",
			Name:      "frames_rendered_total",
			Help:      "Frames rendered and encoded successfully.",
		},
		[]string{"format"},
	)

	framesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "appshot",
			Subsystem: "export",
			Name:      "frames_failed_total",
			Help:      "Frame attempts that failed or were skipped.",
		},
		[]string{"reason"},
	)

	exportsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "appshot",
			Subsystem: "export",
			Name:      "exports_in_progress",
			Help:      "Batch exports currently running.",
		},
	)
)

// FrameRendered counts one successfully encoded frame.
func FrameRendered(format string) {
	framesRendered.WithLabelValues(format).Inc()
}

// FrameFailed counts one failed or skipped frame attempt.
func FrameFailed(reason string) {
	framesFailed.WithLabelValues(reason).Inc()
}

// ExportStarted marks a batch export as running; the returned func ends it.
func ExportStarted() func() {
	exportsInProgress.Inc()
	return exportsInProgress.Dec
}
