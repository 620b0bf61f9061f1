package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canteen_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "canteen_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	OrdersPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canteen_orders_placed_total",
			Help: "Orders placed per canteen",
		},
		[]string{"canteen"},
	)

	OrderTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canteen_order_transitions_total",
			Help: "Order status transitions per canteen and target status",
		},
		[]string{"canteen", "status"},
	)

	// OrdersRefused counts placements and accepts turned down by a business rule.
	OrdersRefused = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canteen_orders_refused_total",
			Help: "Orders refused per canteen and reason",
		},
		[]string{"canteen", "reason"},
	)

	StockLevel = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "canteen_stock_units",
			Help: "Units in stock per food item",
		},
		[]string{"canteen", "item"},
	)

	SlotFillRatio = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "canteen_slot_fill_ratio",
			Help: "Filled over capacity per pickup slot",
		},
		[]string{"canteen", "slot"},
	)

	WalletAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canteen_wallet_amount_total",
			Help: "Wallet amounts moved per transaction kind",
		},
		[]string{"kind"},
	)

	// StoreBreakerState (0=closed, 1=open, 2=half-open)
	StoreBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "canteen_store_breaker_state",
			Help: "Blob store circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"store"},
	)

	StorePersistFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "canteen_store_persist_failures_total",
			Help: "Snapshot writes that failed to reach the blob store",
		},
	)
)
