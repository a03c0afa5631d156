// Package metrics exposes prometheus counters for the triage and fanout
// paths. The gateway records whether each call was served by the external
// classifier or a local fallback, and why it fell back.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TriageCalls counts gateway operations by outcome.
	// op: classify|predict|chat, source: external|fallback.
	TriageCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lifeline_triage_calls_total",
		Help: "Triage gateway calls by operation and result source.",
	}, []string{"op", "source"})

	// FallbackReasons counts why the external classifier was bypassed.
	// reason: timeout|unavailable|bad_status|malformed.
	FallbackReasons = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lifeline_triage_fallback_reasons_total",
		Help: "Classifier failures that triggered a local fallback, by reason.",
	}, []string{"op", "reason"})

	// FanoutDeliveries counts per-member realtime deliveries.
	FanoutDeliveries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lifeline_fanout_deliveries_total",
		Help: "Realtime events delivered to individual room members.",
	})

	// FanoutFailures counts per-member deliveries that failed and were
	// skipped. A failure never aborts delivery to the rest of the room.
	FanoutFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lifeline_fanout_failures_total",
		Help: "Realtime deliveries that failed for a single member.",
	})

	// SessionsConnected tracks live realtime sessions.
	SessionsConnected = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lifeline_realtime_sessions",
		Help: "Currently connected realtime sessions.",
	})
)
