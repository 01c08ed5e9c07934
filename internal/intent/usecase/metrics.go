package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	previews           *prometheus.CounterVec
	classifierFailures *prometheus.CounterVec
	confirms           *prometheus.CounterVec
	parseDuration      prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		previews: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lovesonia",
			Subsystem: "intent",
			Name:      "previews_total",
			Help:      "Previews created, by intent kind and result source.",
		}, []string{"kind", "source"}),
		classifierFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lovesonia",
			Subsystem: "intent",
			Name:      "classifier_failures_total",
			Help:      "Classifier answers that were unusable, by reason.",
		}, []string{"reason"}),
		confirms: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lovesonia",
			Subsystem: "intent",
			Name:      "confirms_total",
			Help:      "Confirmed previews, by record type and outcome.",
		}, []string{"type", "status"}),
		parseDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lovesonia",
			Subsystem: "intent",
			Name:      "parse_duration_seconds",
			Help:      "Time spent in the rule-based parser.",
			Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025},
		}),
	}
}
