package messages

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	amountLabel  = "amount"
	unknownLabel = "unknown"
)

// Replies mostly wait on the rates API, so buckets start at a millisecond.
var histogramResponseTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "fxconv",
		Subsystem: "telegram",
		Name:      "response_time_seconds",
		Help:      "Time to answer one chat message, by command.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	},
	[]string{"command", "failed"},
)

// commandLabel keeps the label set bounded: free text counts as an amount
// and unrecognised commands share one label.
func commandLabel(text string) string {
	cmd, _ := parseCommand(text)
	switch cmd {
	case "":
		return amountLabel
	case startCommand, helpCommand, currenciesCommand, fromCommand, toCommand, convertCommand, stopCommand:
		return strings.TrimPrefix(cmd, "/")
	}
	return unknownLabel
}

func observeResponse(command string, elapsed time.Duration, failed bool) {
	histogramResponseTime.
		WithLabelValues(command, strconv.FormatBool(failed)).
		Observe(elapsed.Seconds())
}
