// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Fetch metrics
	SourcesFetched  *prometheus.CounterVec
	FetchErrors     *prometheus.CounterVec
	BytesDownloaded prometheus.Counter

	// Merge metrics
	RowsMerged                 prometheus.Gauge
	ColumnsMerged              prometheus.Gauge
	DuplicateTimestampsDropped prometheus.Counter

	// Derivation metrics
	ColumnsComputed prometheus.Gauge
	StepsExecuted   prometheus.Counter

	// Cycle metrics
	ErasSegmented *prometheus.CounterVec
	ErasSkipped   *prometheus.CounterVec

	// Pipeline metrics
	PipelineRunsTotal      *prometheus.CounterVec
	PipelineDuration       prometheus.Histogram
	ReportsGenerated       prometheus.Counter
	LastSuccessfulPipeline prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "bitcoin_metrics_lab"
	}

	return &Metrics{
		SourcesFetched: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "sources_fetched_total",
			Help:      "Total number of raw source tables fetched by source name",
		}, []string{"source"}),
		FetchErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "errors_total",
			Help:      "Total number of fetch failures by source name",
		}, []string{"source"}),
		BytesDownloaded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "bytes_downloaded_total",
			Help:      "Total bytes downloaded from upstream APIs",
		}),

		RowsMerged: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "merge",
			Name:      "rows",
			Help:      "Number of rows in the merged frame of the last run",
		}),
		ColumnsMerged: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "merge",
			Name:      "columns",
			Help:      "Number of raw columns in the merged frame of the last run",
		}),
		DuplicateTimestampsDropped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "merge",
			Name:      "duplicate_timestamps_dropped_total",
			Help:      "Total duplicate source timestamps dropped during merges",
		}),

		ColumnsComputed: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "derive",
			Name:      "columns_computed",
			Help:      "Number of derived columns added in the last run",
		}),
		StepsExecuted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "derive",
			Name:      "steps_executed_total",
			Help:      "Total derivation steps executed",
		}),

		ErasSegmented: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cycles",
			Name:      "eras_segmented_total",
			Help:      "Total eras segmented by family",
		}, []string{"family"}),
		ErasSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cycles",
			Name:      "eras_skipped_total",
			Help:      "Total eras skipped because their anchor could not be resolved",
		}, []string{"family"}),

		PipelineRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "runs_total",
			Help:      "Total pipeline runs by status",
		}, []string{"status"}),
		PipelineDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "duration_seconds",
			Help:      "Duration of full pipeline runs",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		ReportsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reporting",
			Name:      "reports_generated_total",
			Help:      "Total report artifact sets generated",
		}),
		LastSuccessfulPipeline: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix timestamp of the last successful pipeline run",
		}),
	}
}

// Handler returns the HTTP handler exposing the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
