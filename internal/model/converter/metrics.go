package converter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK      = "ok"
	outcomeInvalid = "invalid"
	outcomeFailed  = "failed"
	outcomeStale   = "stale"
)

var conversionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "fxconv",
		Subsystem: "converter",
		Name:      "conversions_total",
	},
	[]string{"outcome"},
)

func observeConversion(outcome string) {
	conversionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveConversion lets views that drive State directly report outcomes.
func ObserveConversion(applied bool, err error) {
	switch {
	case !applied:
		observeConversion(outcomeStale)
	case IsValidationError(err):
		observeConversion(outcomeInvalid)
	case err != nil:
		observeConversion(outcomeFailed)
	default:
		observeConversion(outcomeOK)
	}
}
