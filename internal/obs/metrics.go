package obs

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTPRequestsTotal counts requests by handler, method and status code.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	// HTTPRequestDuration observes request latency by handler and method.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)

	// ShipmentTransitionsTotal counts lifecycle transitions by resulting status.
	ShipmentTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_transitions_total",
			Help: "Total number of shipment status transitions",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(ShipmentTransitionsTotal)
}
