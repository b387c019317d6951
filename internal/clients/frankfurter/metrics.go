package frankfurter

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramRequestTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "fxconv",
		Subsystem: "frankfurter",
		Name:      "histogram_request_time_seconds",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	},
	[]string{"op", "status"},
)

func observeRequest(op string, status int, elapsed time.Duration) {
	label := "error"
	if status != 0 {
		label = strconv.Itoa(status)
	}
	histogramRequestTime.
		WithLabelValues(op, label).
		Observe(elapsed.Seconds())
}
