package order_placed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_events_published_total",
			Help: "Total number of events published to the broker",
		},
		[]string{"topic", "result"},
	)

	GatewayPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_publish_duration_seconds",
			Help:    "Duration of event publish calls",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"topic", "result"},
	)
)
