// Package players holds the in-memory Player cache. The durable store is the
// source of truth at startup; after that the cache is authoritative and the
// store trails behind it.
package players

import (
	"strings"
	"sync"
)

// Player is one named participant. Records persist across connections and
// restarts; they are never deleted.
type Player struct {
	Name       string `json:"name"`
	BestScore  int    `json:"bestScore"`
	TotalGames int    `json:"totalGames"`
}

type Store struct {
	mu      sync.Mutex
	players map[string]*Player
	order   []string // arrival order, drives stable leaderboard ties
}

func NewStore() *Store {
	return &Store{
		players: make(map[string]*Player),
	}
}

// Load replaces the cache contents with the given records, preserving their
// order. Called once at startup with the durable store's rows.
func (s *Store) Load(records []Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = make(map[string]*Player, len(records))
	s.order = s.order[:0]
	for _, r := range records {
		r := r
		if _, exists := s.players[r.Name]; exists {
			continue
		}
		s.players[r.Name] = &r
		s.order = append(s.order, r.Name)
	}
}

// Ensure returns the player with the given name, creating a zeroed record if
// none exists. Reports whether the record was created.
func (s *Store) Ensure(name string) (Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[name]; ok {
		return *p, false
	}
	p := &Player{Name: name}
	s.players[name] = p
	s.order = append(s.order, name)
	return *p, true
}

// Get returns a snapshot of the named player.
func (s *Store) Get(name string) (Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[name]; ok {
		return *p, true
	}
	return Player{}, false
}

// RecordResult applies a completed run: the games count increments and the
// best score rises if beaten, as a single atomic update. Returns the updated
// best score and whether it is a new record.
func (s *Store) RecordResult(name string, finalScore int) (best int, isNewRecord bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[name]
	if !ok {
		p = &Player{Name: name}
		s.players[name] = p
		s.order = append(s.order, name)
	}
	p.TotalGames++
	if finalScore > p.BestScore {
		p.BestScore = finalScore
		return p.BestScore, true
	}
	return p.BestScore, false
}

// List returns snapshots of all players in arrival order.
func (s *Store) List() []Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]Player, 0, len(s.order))
	for _, name := range s.order {
		list = append(list, *s.players[name])
	}
	return list
}

// CleanName trims the participant-chosen name; an empty result falls back to
// a generated name derived from the connection ID.
func CleanName(raw, connID string) string {
	name := strings.TrimSpace(raw)
	if name != "" {
		return name
	}
	suffix := connID
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return "Player " + suffix
}
