package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "resumeparser"

var (
	jobsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "jobs_processed_total",
			Help:      "Resume jobs handled, by outcome.",
		},
		[]string{"outcome"},
	)

	jobsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "jobs_in_progress",
			Help:      "Resume jobs currently being handled.",
		},
	)

	jobDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "job_duration_seconds",
			Help:      "Time spent handling one resume job.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		},
	)

	emptyTextTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "textextract",
			Name:      "empty_text_total",
			Help:      "Documents that produced no text.",
		},
	)
)

const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeNoText    = "no_text"
)

// TrackJob runs one job and records its outcome and duration. noText marks
// errors that mean the resume had nothing to extract from.
func TrackJob(noText error, job func() error) error {
	jobsInProgress.Inc()
	defer jobsInProgress.Dec()

	start := time.Now()
	err := job()
	jobDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		jobsProcessedTotal.WithLabelValues(OutcomeCompleted).Inc()
	case noText != nil && errors.Is(err, noText):
		jobsProcessedTotal.WithLabelValues(OutcomeNoText).Inc()
	default:
		jobsProcessedTotal.WithLabelValues(OutcomeFailed).Inc()
	}
	return err
}

func EmptyText() {
	emptyTextTotal.Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
