// Package stats serves the read-side REST queries: per-player summaries,
// run history and the persisted leaderboard.
package stats

import (
	"time"

	"brainrush/internal/db"
)

type PlayerSummary struct {
	Name         string             `json:"name"`
	BestScore    int                `json:"bestScore"`
	TotalGames   int                `json:"totalGames"`
	AverageScore float64            `json:"averageScore"`
	HighestRun   int                `json:"highestRun"`
	LastPlayed   time.Time          `json:"lastPlayed"`
	History      []db.SessionRecord `json:"history"`
}

type LeaderboardRow struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	BestScore  int    `json:"bestScore"`
	TotalGames int    `json:"totalGames"`
}

type GlobalStats struct {
	TotalPlayers  int     `json:"totalPlayers"`
	TotalSessions int     `json:"totalSessions"`
	AverageScore  float64 `json:"averageScore"`
	TopScore      int     `json:"topScore"`
}
