// Package protocol defines the realtime wire contract: event names and the
// JSON payloads exchanged with participants and dashboard observers. Event
// names are fixed for client compatibility.
package protocol

import "encoding/json"

// Inbound events (client → server).
const (
	EventStudentJoin   = "student-join"
	EventDashboardJoin = "dashboard-join"
	EventStartGame     = "start-game"
	EventSubmitAnswer  = "submit-answer"
)

// Outbound events addressed to a single connection.
const (
	EventWelcome         = "welcome"
	EventGameStart       = "game-start"
	EventChallengeStart  = "challenge-start"
	EventTimerUpdate     = "timer-update"
	EventReactionTrigger = "reaction-trigger"
	EventAnswerResult    = "your-answer-result"
	EventChallengeEnd    = "challenge-end"
	EventGameEnd         = "game-end"
	EventAuthError       = "auth-error"
	EventDashboardState  = "dashboard-state"
)

// Outbound events broadcast to every connection.
const (
	EventPlayerJoined      = "player-joined"
	EventPlayerLeft        = "player-left"
	EventGameStatusUpdate  = "game-status-update"
	EventLeaderboardUpdate = "leaderboard-update"
)

// Frame is the envelope for every message in either direction.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}
