package web

import "github.com/prometheus/client_golang/prometheus"

var (
	submitPredictionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "noders_competition",
			Subsystem: "submission",
			Name:      "submit_prediction_requests_total",
			Help:      "SubmitPrediction requests total.",
		},
		[]string{"code", "reason"},
	)
	submitPredictionDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "noders_competition",
			Subsystem: "submission",
			Name:      "submit_prediction_duration_seconds",
			Help:      "SubmitPrediction duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"code", "reason"},
	)
)

func init() {
	prometheus.MustRegister(
		submitPredictionRequestsTotal,
		submitPredictionDurationSeconds,
	)
}
