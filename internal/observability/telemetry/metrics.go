package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Dialog metrics
	DialogTurnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "saarthi_dialog_turns_total",
		Help: "Dialog turns processed, by classified intent and outcome",
	}, []string{"intent", "status"})

	DialogTurnLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "saarthi_dialog_turn_latency_seconds",
		Help:    "End-to-end latency of one dialog turn",
		Buckets: prometheus.DefBuckets,
	})

	FormsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "saarthi_forms_completed_total",
		Help: "Onboarding forms completed",
	})

	// Infrastructure metrics
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "saarthi_active_sessions",
		Help: "Sessions currently held by the session store",
	})

	EarningsLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "saarthi_earnings_lookups_total",
		Help: "Earnings dataset lookups, by result",
	}, []string{"result"})
)
