package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts handled requests by route template, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chef_http_requests_total",
			Help: "Total HTTP requests handled",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration tracks request latency by route template.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chef_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"route"},
	)

	// FeedQueriesTotal counts ranking queries by whether a selection was applied.
	FeedQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chef_feed_queries_total",
			Help: "Total recipe feed queries",
		},
		[]string{"filtered"},
	)

	// FeedResultSize observes how many recipes a feed query returned.
	FeedResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chef_feed_result_size",
			Help:    "Number of recipes returned by a feed query",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21, 50},
		},
	)

	// SelectionMutationsTotal counts selection changes that altered the set.
	SelectionMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chef_selection_mutations_total",
			Help: "Total selection mutations by operation",
		},
		[]string{"op"},
	)

	// SelectionPersistFailuresTotal counts best-effort writes that failed.
	SelectionPersistFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chef_selection_persist_failures_total",
			Help: "Total failed writes of persisted selections",
		},
	)

	// SelectionRestoreFailuresTotal counts persisted records that could not be read back.
	SelectionRestoreFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chef_selection_restore_failures_total",
			Help: "Total persisted selections discarded on load",
		},
	)
)

// ObserveRequest records one completed HTTP request.
func ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveFeed records one ranking query and its result size.
func ObserveFeed(filtered bool, results int) {
	FeedQueriesTotal.WithLabelValues(strconv.FormatBool(filtered)).Inc()
	FeedResultSize.Observe(float64(results))
}

// Handler exposes the default registry in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
