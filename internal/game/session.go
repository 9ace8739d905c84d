package game

import (
	"time"

	"brainrush/internal/challenge"
)

// Session is one run in progress: a single participant working through the
// challenge sequence. All fields are guarded by the engine's lock.
type Session struct {
	ClientID   string
	PlayerName string

	SlotIndex int // 0-based position in the run
	Score     int

	Challenge       challenge.Challenge
	SlotStartedAt   time.Time
	ReactionArmedAt time.Time // zero until the reaction shape goes live

	timeLeft int
	resolved bool // current slot already answered or timed out

	// gen invalidates outstanding timers: every scheduled timer captures the
	// value at scheduling time and no-ops if the session has moved on.
	gen uint64

	// seq orders sessions by start time for stable spectator views.
	seq uint64

	// done releases timer waiters on teardown.
	done chan struct{}
}
