package fetcher

import (
	"github.com/prometheus/client_golang/prometheus"
)

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "finance_api_requests_total",
		Help: "How many requests were sent to the finance backend, partitioned by endpoint and outcome.",
	},
	[]string{"method", "endpoint", "outcome"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "finance_api_request_duration_seconds",
		Help: "The latencies of requests to the finance backend in seconds.",
	},
	[]string{"method", "endpoint"},
)

// Collectors returns the Prometheus collectors of the fetcher.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{requestCount, requestDuration}
}
