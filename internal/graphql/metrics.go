package graphql

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK           = "ok"
	outcomeGraphQLError = "graphql_error"
	outcomeStatus       = "http_status"
	outcomeTransport    = "transport"
	outcomeDecode       = "decode"
)

// Metrics holds the content-fetch Prometheus collectors.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sitefront",
			Subsystem: "graphql",
			Name:      "requests_total",
			Help:      "GraphQL requests by outcome.",
		}, []string{"outcome"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sitefront",
			Subsystem: "graphql",
			Name:      "request_duration_seconds",
			Help:      "GraphQL request latency by outcome.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
}
