package apisvc

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors of the API client.
type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// NewMetrics creates the client metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "attainment_api_requests_total",
				Help: "Total number of API requests by operation and response code.",
			},
			[]string{"op", "code"},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "attainment_api_request_duration_seconds",
				Help:    "API request round trip time by operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}
	reg.MustRegister(m.Requests, m.Latency)
	return m
}
