// Package metrics provides the centralized Prometheus metrics registry for the bet tracker.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	BetsRecordedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bet_tracker",
		Name:      "bets_recorded_total",
		Help:      "Total number of bets recorded",
	})
	BetsSettledTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bet_tracker",
		Name:      "bets_settled_total",
		Help:      "Total number of bets settled, by result",
	}, []string{"result"})
	ValidationFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bet_tracker",
		Name:      "validation_failures_total",
		Help:      "Total number of rejected bet submissions",
	})
)

// Gauge metrics
var (
	PendingBets = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "bet_tracker",
		Name:      "pending_bets",
		Help:      "Number of bets awaiting settlement",
	})
	TotalWagered = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "bet_tracker",
		Name:      "total_wagered",
		Help:      "Total amount wagered across all bets in currency units",
	})
	ProfitLoss = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "bet_tracker",
		Name:      "profit_loss",
		Help:      "Cumulative profit and loss over settled bets",
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(BetsRecordedTotal)
		registry.MustRegister(BetsSettledTotal)
		registry.MustRegister(ValidationFailuresTotal)

		registry.MustRegister(PendingBets)
		registry.MustRegister(TotalWagered)
		registry.MustRegister(ProfitLoss)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordBetRecorded records a new bet entering the ledger.
func RecordBetRecorded(wager float64) {
	BetsRecordedTotal.Inc()
	PendingBets.Inc()
	TotalWagered.Add(wager)
}

// RecordBetSettled records a settlement event and its realised profit.
func RecordBetSettled(won bool, profit float64) {
	result := "loss"
	if won {
		result = "win"
	}
	BetsSettledTotal.WithLabelValues(result).Inc()
	PendingBets.Dec()
	ProfitLoss.Add(profit)
}

// RecordValidationFailure records a rejected bet submission.
func RecordValidationFailure() {
	ValidationFailuresTotal.Inc()
}
