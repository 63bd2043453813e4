package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clubsync_api_requests_total",
		Help: "Outgoing backend requests by method and status code.",
	}, []string{"method", "code"})

	apiLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "clubsync_api_request_duration_seconds",
		Help:    "Outgoing backend request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	apiFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clubsync_api_transport_failures_total",
		Help: "Requests that never produced an HTTP response.",
	}, []string{"method"})
)

// ObserveRequest records one completed request. code is 0 when the request
// never reached the server.
func ObserveRequest(method string, code int, elapsed time.Duration) {
	if code == 0 {
		apiFailures.WithLabelValues(method).Inc()
	} else {
		apiRequests.WithLabelValues(method, strconv.Itoa(code)).Inc()
	}
	apiLatency.WithLabelValues(method).Observe(elapsed.Seconds())
}
