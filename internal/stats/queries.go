package stats

import (
	"fmt"

	"brainrush/internal/db"
)

const historyLimit = 10

type Queries struct {
	DB *db.DB
}

func NewQueries(database *db.DB) *Queries {
	return &Queries{DB: database}
}

// GetPlayerSummary returns one player's record plus aggregates over their run
// history.
func (q *Queries) GetPlayerSummary(name string) (*PlayerSummary, error) {
	summary := &PlayerSummary{Name: name}

	err := q.DB.QueryRow(`
		SELECT best_score, total_games, last_played FROM players WHERE name = $1
	`, name).Scan(&summary.BestScore, &summary.TotalGames, &summary.LastPlayed)
	if err != nil {
		return nil, fmt.Errorf("getting player: %w", err)
	}

	err = q.DB.QueryRow(`
		SELECT
			COALESCE(AVG(score), 0) as avg_score,
			COALESCE(MAX(score), 0) as highest
		FROM game_sessions
		WHERE player_name = $1
	`, name).Scan(&summary.AverageScore, &summary.HighestRun)
	if err != nil {
		return nil, fmt.Errorf("getting session aggregates: %w", err)
	}

	summary.History, err = q.DB.PlayerSessions(name, historyLimit)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// GetLeaderboard returns the persisted best scores in rank order.
func (q *Queries) GetLeaderboard(limit int) ([]LeaderboardRow, error) {
	players, err := q.DB.TopPlayers(limit)
	if err != nil {
		return nil, err
	}

	rows := make([]LeaderboardRow, 0, len(players))
	for i, p := range players {
		rows = append(rows, LeaderboardRow{
			Rank:       i + 1,
			Name:       p.Name,
			BestScore:  p.BestScore,
			TotalGames: p.TotalGames,
		})
	}
	return rows, nil
}

// GetGlobalStats returns whole-server aggregates.
func (q *Queries) GetGlobalStats() (*GlobalStats, error) {
	stats := &GlobalStats{}

	err := q.DB.QueryRow(`
		SELECT COUNT(*), COALESCE(MAX(best_score), 0) FROM players
	`).Scan(&stats.TotalPlayers, &stats.TopScore)
	if err != nil {
		return nil, fmt.Errorf("getting player aggregates: %w", err)
	}

	err = q.DB.QueryRow(`
		SELECT COUNT(*), COALESCE(AVG(score), 0) FROM game_sessions
	`).Scan(&stats.TotalSessions, &stats.AverageScore)
	if err != nil {
		return nil, fmt.Errorf("getting session aggregates: %w", err)
	}
	return stats, nil
}
