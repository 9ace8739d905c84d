// Package metrics exposes the server's Prometheus instruments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ConnectedClients tracks open websocket connections.
	ConnectedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "brainrush",
		Name:      "connected_clients",
		Help:      "Number of open websocket connections.",
	})

	// ActiveSessions tracks runs currently in progress.
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "brainrush",
		Name:      "active_sessions",
		Help:      "Number of game runs currently in progress.",
	})

	// GamesCompleted counts runs that reached the final slot.
	GamesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "brainrush",
		Name:      "games_completed_total",
		Help:      "Total game runs played to completion.",
	})

	// GamesAbandoned counts runs discarded by a mid-run disconnect.
	GamesAbandoned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "brainrush",
		Name:      "games_abandoned_total",
		Help:      "Total game runs discarded before completion.",
	})

	// Answers counts submitted answers by result (correct, incorrect).
	Answers = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "brainrush",
		Name:      "answers_total",
		Help:      "Total submitted answers by result.",
	}, []string{"result"})

	// Timeouts counts slots that expired unanswered.
	Timeouts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "brainrush",
		Name:      "challenge_timeouts_total",
		Help:      "Total challenge slots that timed out unanswered.",
	})

	// ChallengesGenerated counts generated challenges by kind.
	ChallengesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "brainrush",
		Name:      "challenges_generated_total",
		Help:      "Total challenges generated by kind.",
	}, []string{"kind"})
)
