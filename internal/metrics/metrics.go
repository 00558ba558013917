package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	ProfilesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfilesCreated,
			Help: HelpTextProfilesCreated,
		},
	)

	ItemsEquipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsEquipped,
			Help: HelpTextItemsEquipped,
		},
		[]string{LabelSlot},
	)

	AutoEquips = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAutoEquips,
			Help: HelpTextAutoEquips,
		},
	)

	TokenExchanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTokenExchanges,
			Help: HelpTextTokenExchanges,
		},
		[]string{LabelOutcome},
	)
)
