// Package leaderboard renders the shared read model: best scores ever and
// games currently in progress. Both are pure projections; neither holds
// state of its own.
package leaderboard

import (
	"sort"

	"brainrush/internal/players"
)

// TopSize caps the rendered best-score view.
const TopSize = 50

// Entry is one leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// ActiveRun is one in-progress game as shown to spectators.
type ActiveRun struct {
	PlayerName      string `json:"playerName"`
	CurrentScore    int    `json:"currentScore"`
	ChallengeNumber int    `json:"challengeNumber"`
}

// BestScores projects players with a recorded best onto sorted rows, highest
// first. Ties keep the input (arrival) order, so repeated queries never
// reshuffle equal scores. At most TopSize rows are returned.
func BestScores(list []players.Player) []Entry {
	entries := make([]Entry, 0, len(list))
	for _, p := range list {
		if p.BestScore > 0 {
			entries = append(entries, Entry{Name: p.Name, Score: p.BestScore})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	if len(entries) > TopSize {
		entries = entries[:TopSize]
	}
	return entries
}

// SortRuns orders in-progress games by current score, highest first, keeping
// the input order for ties.
func SortRuns(runs []ActiveRun) []ActiveRun {
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].CurrentScore > runs[j].CurrentScore
	})
	return runs
}
