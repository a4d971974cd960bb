// Package observability exposes Prometheus counters for the calculation
// endpoints. Metrics are registered on the default registry and served
// from /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calcRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aeolus_calc_requests_total",
		Help: "Calculation requests by tool.",
	}, []string{"tool"})

	calcErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aeolus_calc_errors_total",
		Help: "Failed calculation requests by tool.",
	}, []string{"tool"})
)

// ObserveCalc records one calculation attempt for the given tool.
func ObserveCalc(tool string, err error) {
	calcRequests.WithLabelValues(tool).Inc()
	if err != nil {
		calcErrors.WithLabelValues(tool).Inc()
	}
}
