package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	predictionsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scoreline_predictions_computed_total",
		Help: "Total number of predictions computed by the engine",
	})

	teamResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scoreline_team_resolutions_total",
		Help: "Team name lookups by resolution outcome",
	}, []string{"resolution"})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scoreline_prediction_cache_lookups_total",
		Help: "Prediction cache lookups by result",
	}, []string{"result"})

	predictionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scoreline_prediction_duration_seconds",
		Help:    "Duration of prediction requests including cache access",
		Buckets: prometheus.DefBuckets,
	})
)
