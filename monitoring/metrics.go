package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	decisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskcore_decisions_total",
			Help: "Total number of sizing decisions",
		},
		[]string{"instrument", "outcome"},
	)

	riskAmount = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "riskcore_risk_amount",
			Help:    "Distribution of budgeted risk per approved trade",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"instrument"},
	)

	totalExposure = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "riskcore_total_exposure",
			Help: "Notional exposure across open positions",
		},
	)

	openPositions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "riskcore_open_positions",
			Help: "Number of open positions in the last snapshot",
		},
	)

	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskcore_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(decisionsTotal)
	prometheus.MustRegister(riskAmount)
	prometheus.MustRegister(totalExposure)
	prometheus.MustRegister(openPositions)
	prometheus.MustRegister(errorsTotal)
}

// RecordDecision records one sizing outcome.
func RecordDecision(instrument, outcome string, budgetedRisk float64) {
	decisionsTotal.WithLabelValues(instrument, outcome).Inc()
	if budgetedRisk > 0 {
		riskAmount.WithLabelValues(instrument).Observe(budgetedRisk)
	}
}

// UpdatePortfolio refreshes the snapshot gauges.
func UpdatePortfolio(exposure float64, positions int) {
	totalExposure.Set(exposure)
	openPositions.Set(float64(positions))
}

// RecordError records an error metric
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}

// Handler serves the Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
