// Package metrics exposes prometheus instrumentation for the settlement engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SettlementsTotal counts terminal settlement transitions by kind and state.
	SettlementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "goldvault_settlements_total",
		Help: "Terminal settlement transitions.",
	}, []string{"kind", "state"})

	// ReplaysTotal counts settlement attempts that observed an already
	// terminal request.
	ReplaysTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "goldvault_settlement_replays_total",
		Help: "Settlement attempts replayed against a terminal request.",
	})

	// AutoRejectsTotal counts withdrawal approvals turned into rejections
	// because the balance no longer covered the requested units.
	AutoRejectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "goldvault_withdrawal_auto_rejects_total",
		Help: "Withdrawal approvals auto-rejected on stale balance.",
	})

	// GatewayRetriesTotal counts retried payment gateway calls.
	GatewayRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "goldvault_gateway_retries_total",
		Help: "Retried payment gateway calls.",
	})
)
