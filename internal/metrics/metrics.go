package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Request volume
	RequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "requests_total",
		Help: "Total number of API requests received.",
	})

	// Handler latency
	RequestDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "request_duration_seconds",
		Help:    "End-to-end handler duration for API requests.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
	})

	// Translation volume
	TranslationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "translations_total",
		Help: "Total number of translations produced.",
	})

	// Cache effectiveness for the text-translation path
	TranslationCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "translation_cache_hits_total",
		Help: "Translations served from the cache instead of the model.",
	})

	// Upstream latency, labeled by external service
	UpstreamDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_duration_seconds",
		Help:    "Duration of calls to external AI services.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 40},
	}, []string{"service"})
)

func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		RequestsTotal,
		RequestDurationSeconds,
		TranslationsTotal,
		TranslationCacheHitsTotal,
		UpstreamDurationSeconds,
	)
}
