// Package metrics defines the prometheus collectors shared by the HTTP
// layer and the backend client.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts handled HTTP requests by method, route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "itemtracker_http_requests_total",
		Help: "Handled HTTP requests.",
	}, []string{"method", "path", "code"})

	// HTTPDuration observes request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "itemtracker_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// BackendRequests counts calls made to the hosted collection backend.
	BackendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "itemtracker_backend_requests_total",
		Help: "Requests issued to the collection backend.",
	}, []string{"collection", "op", "code"})
)

// Handler exposes the default prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
