package ordersync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	kindInitialize = "initialize"
	kindRefresh    = "refresh"
	kindInsert     = "insert"
	kindUpdate     = "update"
	kindOther      = "other"

	outcomeApplied   = "applied"
	outcomeReplaced  = "replaced"
	outcomeIgnored   = "ignored"
	outcomeDiscarded = "discarded"
	outcomeNoSession = "no_session"
	outcomeFailed    = "failed"
)

var (
	ReconcileTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_sync_reconcile_total",
			Help: "Total number of order list reconciliations by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	OrderListSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "order_sync_orders",
			Help: "Number of orders currently held in the synchronized list",
		},
	)
)
