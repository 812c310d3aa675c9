package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	StampsProcessed *prometheus.CounterVec
	SlipsProcessed  *prometheus.CounterVec
	APIErrors       *prometheus.CounterVec
	RequestSeconds  *prometheus.HistogramVec
	InFlight        prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		StampsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "stampcam_stamps_processed_total",
			Help: "Total number of processed photo stamp generations.",
		}, []string{"status"}),
		SlipsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "stampcam_slips_processed_total",
			Help: "Total number of processed salary slip generations.",
		}, []string{"status"}),
		APIErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "stampcam_external_api_errors_total",
			Help: "Total number of errors received from external services.",
		}, []string{"target"}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stampcam_external_request_duration_seconds",
			Help:    "Duration of requests to external services.",
			Buckets: prometheus.DefBuckets,
		}, []string{"target"}),
		InFlight: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "stampcam_generations_in_flight",
			Help: "Current number of generations being processed.",
		}),
	}
}
