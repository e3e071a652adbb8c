package server

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the preview server.
type metrics struct {
	passesTotal       *prometheus.CounterVec
	replacementsTotal prometheus.Counter
	passDuration      *prometheus.HistogramVec
	reloadClients     prometheus.Gauge
}

// Metrics are registered against the default registerer exactly once,
// no matter how many servers a process constructs.
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

func serverMetrics() *metrics {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()

	if globalMetrics == nil {
		globalMetrics = initMetrics(prometheus.DefaultRegisterer)
	}
	return globalMetrics
}

func initMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		passesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "graft",
			Name:      "passes_total",
			Help:      "Total number of hydration passes by document and status",
		}, []string{"document", "status"}),

		replacementsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "graft",
			Name:      "replacements_total",
			Help:      "Total number of elements replaced across all passes",
		}),

		passDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "graft",
			Name:      "pass_duration_seconds",
			Help:      "Hydration pass duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"document"}),

		reloadClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "graft",
			Name:      "reload_clients",
			Help:      "Number of connected reload websocket clients",
		}),
	}
}
