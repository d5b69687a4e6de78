package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	OrdersReceived = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_received_total",
			Help: "number of new orders accepted from the change feed",
		},
	)

	OrdersDeduplicated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_deduplicated_total",
			Help: "number of feed arrivals suppressed by the dedup window",
		},
	)

	StatusUpdates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_status_updates_total",
			Help: "number of status updates written to the backend",
		},
	)

	NotificationsRaised = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_raised_total",
			Help: "number of notifications raised",
		},
	)
)

func Init() {
	prometheus.MustRegister(OrdersReceived)
	prometheus.MustRegister(OrdersDeduplicated)
	prometheus.MustRegister(StatusUpdates)
	prometheus.MustRegister(NotificationsRaised)
}
