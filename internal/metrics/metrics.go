package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	LikeToggles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_like_toggles_total",
		Help: "Like toggles by outcome (liked, unliked)",
	}, []string{"result"})

	CommentsChanged = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_comments_total",
		Help: "Comments added or removed",
	}, []string{"op"})

	ProjectionEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_projection_events_total",
		Help: "Content events applied to the feed projection",
	}, []string{"event", "content_type", "outcome"})

	CounterDrift = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_counter_drift_total",
		Help: "Counters corrected by reconciliation",
	}, []string{"counter"})

	ReconcileRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_reconcile_runs_total",
		Help: "Reconciliation job runs by outcome",
	}, []string{"outcome"})

	AdEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_ad_events_total",
		Help: "Advertisement impressions and clicks",
	}, []string{"event"})

	AdSlots = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_ad_slots_total",
		Help: "Feed ad slots by outcome (filled, skipped)",
	}, []string{"outcome"})

	ImportedArticles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_imported_articles_total",
		Help: "Articles consumed from the import queue by outcome",
	}, []string{"outcome"})

	DBQueryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "feed_db_query_duration_seconds",
		Help:    "Duration of database operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// MustRegister registers every collector.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		LikeToggles,
		CommentsChanged,
		ProjectionEvents,
		CounterDrift,
		ReconcileRuns,
		AdEvents,
		AdSlots,
		ImportedArticles,
		DBQueryDuration,
	)
}

// ObserveDBQuery records how long a database operation took.
func ObserveDBQuery(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DBQueryDuration.WithLabelValues(operation, status).Observe(time.Since(start).Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// IncProjection counts one projector event.
func IncProjection(event, contentType string, err error) {
	ProjectionEvents.WithLabelValues(event, contentType, outcome(err)).Inc()
}

// IncReconcileRun counts one reconciliation pass.
func IncReconcileRun(skipped bool, err error) {
	switch {
	case skipped:
		ReconcileRuns.WithLabelValues("skipped").Inc()
	default:
		ReconcileRuns.WithLabelValues(outcome(err)).Inc()
	}
}
