package web

import "github.com/prometheus/client_golang/prometheus"

var (
	getLeaderboardRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "noders_competition",
			Subsystem: "leaderboard",
			Name:      "get_leaderboard_requests_total",
			Help:      "GetLeaderboard requests total.",
		},
		[]string{"code", "reason"},
	)
	getLeaderboardDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "noders_competition",
			Subsystem: "leaderboard",
			Name:      "get_leaderboard_duration_seconds",
			Help:      "GetLeaderboard duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"code", "reason"},
	)
)

func init() {
	prometheus.MustRegister(
		getLeaderboardRequestsTotal,
		getLeaderboardDurationSeconds,
	)
}
