// Package metrics содержит prometheus-коллекторы сервиса.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidhub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vidhub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	SubscriptionToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidhub_subscription_toggles_total",
			Help: "Subscription toggles by resulting state",
		},
		[]string{"state"},
	)

	RegistrationHookFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vidhub_registration_hook_failures_total",
			Help: "Post-registration hook failures that did not roll back user creation",
		},
	)

	PlaylistEventsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidhub_playlist_events_processed_total",
			Help: "user.registered events handled by the playlist worker",
		},
		[]string{"result"},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vidhub_cache_hits_total",
			Help: "Cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vidhub_cache_misses_total",
			Help: "Cache misses",
		},
	)
)

// RecordHTTPRequest учитывает обработанный HTTP-запрос.
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordToggle учитывает переключение подписки.
func RecordToggle(state string) {
	SubscriptionToggles.WithLabelValues(state).Inc()
}

func RecordHookFailure() {
	RegistrationHookFailures.Inc()
}

func RecordPlaylistEvent(result string) {
	PlaylistEventsProcessed.WithLabelValues(result).Inc()
}

func RecordCacheHit() {
	CacheHits.Inc()
}

func RecordCacheMiss() {
	CacheMisses.Inc()
}
