package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultHit   = "hit"
	ResultMiss  = "miss"
)

var (
	// HTTPRequests counts requests by method, route template and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "naya_blog_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPDuration records request latency by method and route template.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "naya_blog_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// EventsPublished counts post lifecycle event publishes by type and result.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "naya_blog_post_events_published_total",
		Help: "Total number of post lifecycle events published",
	}, []string{"event_type", "result"})

	// CacheLookups counts cache-aside lookups by result.
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "naya_blog_cache_lookups_total",
		Help: "Cache-aside lookups by result",
	}, []string{"result"})

	// WorkerEvents counts events handled by the worker by type and result.
	WorkerEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "naya_blog_worker_events_total",
		Help: "Total number of events handled by the worker",
	}, []string{"event_type", "result"})
)

// ObserveHTTP records one finished request. route is the gin route template.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func RecordEventPublish(eventType string, err error) {
	EventsPublished.WithLabelValues(eventType, result(err)).Inc()
}

func RecordWorkerEvent(eventType string, err error) {
	WorkerEvents.WithLabelValues(eventType, result(err)).Inc()
}

func RecordCacheLookup(r string) {
	CacheLookups.WithLabelValues(r).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
