package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks backend activity for Prometheus scraping.
type Metrics struct {
	Requests *prometheus.CounterVec
	Scores   prometheus.Histogram
	Issues   prometheus.Histogram
}

// NewMetrics registers the backend's collectors on a fresh registry and
// returns both. A per-server registry keeps tests independent.
func NewMetrics() (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stdguard_requests_total",
			Help: "Requests handled, by endpoint and outcome.",
		}, []string{"endpoint", "status"}),
		Scores: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "stdguard_review_score",
			Help:    "Distribution of review scores.",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
		Issues: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "stdguard_review_issues",
			Help:    "Issues found per review.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}, reg
}
