// Package game implements the session engine: it owns one run per connected
// participant, drives each run's slot state machine and timers, scores
// answers, and maintains the shared leaderboard snapshot pushed to
// spectators.
package game

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"brainrush/internal/challenge"
	"brainrush/internal/leaderboard"
	"brainrush/internal/metrics"
	"brainrush/internal/players"
	"brainrush/internal/protocol"
	"brainrush/internal/score"
)

// TotalChallenges is the fixed length of a run, shared with clients.
const TotalChallenges = 9

type Config struct {
	TotalChallenges int
	// AnswerGrace is the pause between an answered slot and the next one.
	AnswerGrace time.Duration
	// TimeoutGrace is the pause between a timed-out slot and the next one.
	TimeoutGrace time.Duration
	// SnapshotInterval is the period of the global leaderboard broadcast.
	SnapshotInterval time.Duration
	// AdminPassword gates dashboard-join.
	AdminPassword string
	// Generate produces the next challenge for a slot.
	Generate func() challenge.Challenge
}

func DefaultConfig() Config {
	return Config{
		TotalChallenges:  TotalChallenges,
		AnswerGrace:      2 * time.Second,
		TimeoutGrace:     1 * time.Second,
		SnapshotInterval: 2 * time.Second,
		AdminPassword:    "admin123",
		Generate:         challenge.Random,
	}
}

// Engine serializes every state transition behind a single lock: inbound
// actions, timer callbacks and the broadcast tick all take it before
// touching a session. Persistence runs outside the lock, fire-and-forget.
type Engine struct {
	mu       sync.Mutex
	cfg      Config
	clock    clockwork.Clock
	emitter  Emitter
	store    Store // nil when running without a database
	cache    *players.Store
	sessions map[string]*Session
	names    map[string]string // clientID → player name for joined participants
	seq      uint64
}

func New(cfg Config, clock clockwork.Clock, emitter Emitter, store Store, cache *players.Store) *Engine {
	if cfg.Generate == nil {
		cfg.Generate = challenge.Random
	}
	if cfg.TotalChallenges == 0 {
		cfg.TotalChallenges = TotalChallenges
	}
	return &Engine{
		cfg:      cfg,
		clock:    clock,
		emitter:  emitter,
		store:    store,
		cache:    cache,
		sessions: make(map[string]*Session),
		names:    make(map[string]string),
	}
}

// Join registers a participant name for a connection and acknowledges it
// with the current best score and leaderboard. First-time names are created
// in the cache immediately and written through to the store asynchronously.
func (e *Engine) Join(clientID, rawName string) {
	name := players.CleanName(rawName, clientID)

	e.mu.Lock()
	e.names[clientID] = name
	p, created := e.cache.Ensure(name)
	welcome := protocol.Welcome{
		Name:        name,
		BestScore:   p.BestScore,
		Leaderboard: leaderboard.BestScores(e.cache.List()),
	}
	snap := e.snapshotLocked()
	e.mu.Unlock()

	if created && e.store != nil {
		go func() {
			if err := e.store.UpsertPlayer(name, 0, 0); err != nil {
				log.Error().Err(err).Str("player", name).Msg("upsert player failed")
			}
		}()
	}

	e.emitter.ToClient(clientID, protocol.EventWelcome, welcome)
	e.emitter.Broadcast(protocol.EventPlayerJoined, snap)

	log.Info().Str("player", name).Str("client", clientID).Msg("player joined")
}

// DashboardJoin authenticates a dashboard observer. A bad password gets an
// explicit rejection and no state change.
func (e *Engine) DashboardJoin(clientID, password string) {
	if password != e.cfg.AdminPassword {
		e.emitter.ToClient(clientID, protocol.EventAuthError, protocol.AuthError{Message: "Incorrect password"})
		return
	}

	e.emitter.ToClient(clientID, protocol.EventDashboardState, e.Snapshot())
	log.Info().Str("client", clientID).Msg("dashboard joined")
}

// StartRun begins a run for a joined participant. If a run is already live
// for this connection the request is silently ignored and the existing run
// continues.
func (e *Engine) StartRun(clientID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	name, ok := e.names[clientID]
	if !ok {
		return
	}
	if _, exists := e.sessions[clientID]; exists {
		return
	}

	e.seq++
	s := &Session{
		ClientID:   clientID,
		PlayerName: name,
		seq:        e.seq,
		done:       make(chan struct{}),
	}
	e.sessions[clientID] = s
	metrics.ActiveSessions.Inc()

	e.emitter.ToClient(clientID, protocol.EventGameStart, protocol.GameStart{
		TotalChallenges: e.cfg.TotalChallenges,
	})
	e.startSlot(s)
	e.emitter.Broadcast(protocol.EventGameStatusUpdate, e.snapshotLocked())

	log.Info().Str("player", name).Msg("run started")
}

// SubmitAnswer resolves the current slot for this connection's run. Answers
// for a slot that has already been answered or timed out are no-ops; the
// first of {answer, timeout} to take the engine lock wins.
func (e *Engine) SubmitAnswer(clientID string, answerIndex int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[clientID]
	if !ok || s.resolved || s.Challenge == nil {
		return
	}

	s.gen++ // invalidate the countdown and any pending arm event
	s.resolved = true
	now := e.clock.Now()

	var correct bool
	var elapsed time.Duration
	if _, isReaction := s.Challenge.(*challenge.Reaction); isReaction {
		// A reaction counts only once the shape is live; the index is
		// irrelevant. Timing starts at the arm moment.
		correct = !s.ReactionArmedAt.IsZero()
		if correct {
			elapsed = now.Sub(s.ReactionArmedAt)
		}
	} else {
		correct = answerIndex == s.Challenge.Answer()
		elapsed = now.Sub(s.SlotStartedAt)
	}

	points := 0
	if correct {
		points = score.Points(elapsed, s.Challenge.Limit())
		s.Score += points
		metrics.Answers.WithLabelValues("correct").Inc()
	} else {
		metrics.Answers.WithLabelValues("incorrect").Inc()
	}

	s.SlotIndex++
	e.schedule(s, e.cfg.AnswerGrace, e.advanceSlot)

	e.emitter.ToClient(clientID, protocol.EventAnswerResult, protocol.AnswerResult{
		Correct:      correct,
		Score:        s.Score,
		PointsEarned: points,
	})
	e.emitter.ToClient(clientID, protocol.EventChallengeEnd, protocol.ChallengeEnd{
		ChallengeNumber: s.SlotIndex,
	})
	e.emitter.Broadcast(protocol.EventGameStatusUpdate, e.snapshotLocked())
}

// Disconnect tears down a connection: a run in progress is discarded
// unconditionally, with no scoring and no persistence.
func (e *Engine) Disconnect(clientID string) {
	e.mu.Lock()

	name, joined := e.names[clientID]
	delete(e.names, clientID)

	if s, ok := e.sessions[clientID]; ok {
		s.gen++
		close(s.done)
		delete(e.sessions, clientID)
		metrics.ActiveSessions.Dec()
		metrics.GamesAbandoned.Inc()
	}

	snap := e.snapshotLocked()
	e.mu.Unlock()

	if joined {
		e.emitter.Broadcast(protocol.EventPlayerLeft, snap)
		log.Info().Str("player", name).Str("client", clientID).Msg("player left")
	}
}

// Snapshot returns the current shared read model.
func (e *Engine) Snapshot() protocol.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Run pushes the aggregated snapshot to all connections on a fixed interval
// until the context is cancelled. Best-effort: slow observers miss updates
// rather than stalling the engine.
func (e *Engine) Run(ctx context.Context) {
	ticker := e.clock.NewTicker(e.cfg.SnapshotInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			e.emitter.Broadcast(protocol.EventLeaderboardUpdate, e.Snapshot())
		}
	}
}

// startSlot opens the next slot: generates the challenge, arms the countdown
// and, for reaction challenges, the one-shot arm event. Caller holds the
// lock.
func (e *Engine) startSlot(s *Session) {
	ch := e.cfg.Generate()
	metrics.ChallengesGenerated.WithLabelValues(string(ch.Kind())).Inc()

	s.Challenge = ch
	s.SlotStartedAt = e.clock.Now()
	s.ReactionArmedAt = time.Time{}
	s.resolved = false
	s.timeLeft = ch.Limit()

	if r, ok := ch.(*challenge.Reaction); ok {
		e.schedule(s, time.Duration(r.Delay)*time.Millisecond, e.armReaction)
	}
	e.schedule(s, time.Second, e.handleTick)

	e.emitter.ToClient(s.ClientID, protocol.EventChallengeStart, protocol.ChallengeStart{
		Challenge:       ch,
		ChallengeNumber: s.SlotIndex + 1,
		TotalChallenges: e.cfg.TotalChallenges,
	})
}

// handleTick advances the per-slot countdown by one second.
func (e *Engine) handleTick(s *Session) {
	s.timeLeft--
	if s.timeLeft > 0 {
		e.schedule(s, time.Second, e.handleTick)
		e.emitter.ToClient(s.ClientID, protocol.EventTimerUpdate, s.timeLeft)
		return
	}

	e.emitter.ToClient(s.ClientID, protocol.EventTimerUpdate, s.timeLeft)
	e.resolveTimeout(s)
}

// resolveTimeout closes an unanswered slot: no points, move on.
func (e *Engine) resolveTimeout(s *Session) {
	s.gen++ // invalidate any pending arm event
	s.resolved = true
	s.SlotIndex++
	metrics.Timeouts.Inc()

	e.schedule(s, e.cfg.TimeoutGrace, e.advanceSlot)
	e.emitter.ToClient(s.ClientID, protocol.EventChallengeEnd, protocol.ChallengeEnd{
		ChallengeNumber: s.SlotIndex,
	})
}

// armReaction marks the reaction shape live and notifies the owner.
func (e *Engine) armReaction(s *Session) {
	r, ok := s.Challenge.(*challenge.Reaction)
	if !ok || s.resolved {
		return
	}
	s.ReactionArmedAt = e.clock.Now()
	e.emitter.ToClient(s.ClientID, protocol.EventReactionTrigger, protocol.ReactionTrigger{
		TargetShape: r.TargetShape,
	})
}

// advanceSlot either opens the next slot or finishes the run.
func (e *Engine) advanceSlot(s *Session) {
	if s.SlotIndex >= e.cfg.TotalChallenges {
		e.finishRun(s)
		return
	}
	e.startSlot(s)
}

// finishRun runs the end-of-run procedure: commit the result to the cache,
// kick off the durable writes, notify the owner and drop the session from
// the live registry. Caller holds the lock.
func (e *Engine) finishRun(s *Session) {
	delete(e.sessions, s.ClientID)
	close(s.done)
	metrics.ActiveSessions.Dec()
	metrics.GamesCompleted.Inc()

	final := s.Score
	best, isNewRecord := e.cache.RecordResult(s.PlayerName, final)

	if e.store != nil {
		go e.persistRun(s.PlayerName, final, isNewRecord)
	}

	e.emitter.ToClient(s.ClientID, protocol.EventGameEnd, protocol.GameEnd{
		FinalScore:  final,
		BestScore:   best,
		Leaderboard: leaderboard.BestScores(e.cache.List()),
		IsNewRecord: isNewRecord,
	})
	e.emitter.Broadcast(protocol.EventGameStatusUpdate, e.snapshotLocked())

	log.Info().
		Str("player", s.PlayerName).
		Int("finalScore", final).
		Bool("newRecord", isNewRecord).
		Msg("run finished")
}

// persistRun writes a completed run through the persistence port. Failures
// are logged and dropped; the cache stays authoritative.
func (e *Engine) persistRun(name string, finalScore int, isNewRecord bool) {
	if err := e.store.AppendSession(name, finalScore); err != nil {
		log.Error().Err(err).Str("player", name).Msg("append session failed")
	}
	if isNewRecord {
		if err := e.store.SetBestScore(name, finalScore); err != nil {
			log.Error().Err(err).Str("player", name).Msg("set best score failed")
		}
	}
	if err := e.store.UpsertPlayer(name, 0, 1); err != nil {
		log.Error().Err(err).Str("player", name).Msg("increment games failed")
	}
}

// schedule arms a one-shot timer whose callback re-enters the engine under
// the lock. The callback is dropped if the session has been torn down or has
// moved past the state that scheduled it.
func (e *Engine) schedule(s *Session, d time.Duration, fn func(*Session)) {
	gen := s.gen
	t := e.clock.NewTimer(d)

	go func() {
		select {
		case <-t.Chan():
		case <-s.done:
			if !t.Stop() {
				select {
				case <-t.Chan():
				default:
				}
			}
			return
		}

		e.mu.Lock()
		defer e.mu.Unlock()
		if e.sessions[s.ClientID] != s || s.gen != gen {
			return
		}
		fn(s)
	}()
}

// snapshotLocked builds the shared read model. Caller holds the lock.
func (e *Engine) snapshotLocked() protocol.Snapshot {
	live := make([]*Session, 0, len(e.sessions))
	for _, s := range e.sessions {
		live = append(live, s)
	}
	sort.Slice(live, func(i, j int) bool { return live[i].seq < live[j].seq })

	runs := make([]leaderboard.ActiveRun, 0, len(live))
	for _, s := range live {
		runs = append(runs, leaderboard.ActiveRun{
			PlayerName:      s.PlayerName,
			CurrentScore:    s.Score,
			ChallengeNumber: s.SlotIndex + 1,
		})
	}

	return protocol.Snapshot{
		Players:          e.cache.List(),
		Leaderboard:      leaderboard.BestScores(e.cache.List()),
		ActiveGamesCount: len(e.sessions),
		ActiveGames:      leaderboard.SortRuns(runs),
	}
}
