package order_placed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ConsumedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "consumer_order_placed_messages_total",
		Help: "Total number of order.placed messages consumed",
	},
	[]string{"result"},
)
