package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "notesvc", Name: "http_requests_total", Help: "Number of HTTP requests by method and status code."},
		[]string{"method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "notesvc", Name: "http_request_duration_seconds", Help: "Duration of HTTP requests in seconds by method."},
		[]string{"method"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequestsTotal)
	reg.MustRegister(HTTPRequestDuration)
}
