package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vigilgate_decisions_total",
		Help: "Enforcement decisions by action and domain",
	}, []string{"action", "domain"})

	RiskScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vigilgate_risk_score",
		Help:    "Distribution of computed risk scores",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})

	UpstreamAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vigilgate_upstream_attempts_total",
		Help: "Upstream provider attempts by final outcome",
	}, []string{"outcome"})

	UpstreamFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vigilgate_upstream_fallbacks_total",
		Help: "Calls answered by the deterministic fallback generator",
	})
)
