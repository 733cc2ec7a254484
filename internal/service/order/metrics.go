package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var FeeOverflowTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_cancellation_fee_overflow_total",
		Help: "Cancellation quotes where the configured fee exceeded the order total",
	},
	[]string{"operation"},
)
