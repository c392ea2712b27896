package transit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	fetchCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "transit_schedule_fetch_total",
		Help: "Number of stop schedule requests sent to the transit API, by outcome",
	}, []string{"outcome"})
	fetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "transit_schedule_fetch_duration_seconds",
		Help:    "Latency of stop schedule requests sent to the transit API",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(fetchCount, fetchDuration)
}

func observeFetch(start time.Time, err error) {
	fetchDuration.Observe(time.Since(start).Seconds())

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	fetchCount.With(prometheus.Labels{"outcome": outcome}).Inc()
}
