package db

import (
	"fmt"
	"time"
)

type PlayerRecord struct {
	Name       string    `json:"name"`
	BestScore  int       `json:"bestScore"`
	TotalGames int       `json:"totalGames"`
	LastPlayed time.Time `json:"lastPlayed"`
}

// UpsertPlayer creates the player if missing. On conflict the stored best
// score only ever goes up, and gamesIncrement is added to the games count.
func (d *DB) UpsertPlayer(name string, bestScore, gamesIncrement int) error {
	_, err := d.conn.Exec(`
		INSERT INTO players (name, best_score, total_games, last_played)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (name) DO UPDATE SET
			best_score  = GREATEST(players.best_score, EXCLUDED.best_score),
			total_games = players.total_games + $3,
			last_played = now()
	`, name, bestScore, gamesIncrement)
	if err != nil {
		return fmt.Errorf("upserting player: %w", err)
	}
	return nil
}

// SetBestScore raises the stored best score to at least score.
func (d *DB) SetBestScore(name string, score int) error {
	_, err := d.conn.Exec(`
		UPDATE players SET best_score = GREATEST(best_score, $2), last_played = now()
		WHERE name = $1
	`, name, score)
	if err != nil {
		return fmt.Errorf("setting best score: %w", err)
	}
	return nil
}

func (d *DB) GetPlayer(name string) (*PlayerRecord, error) {
	var p PlayerRecord
	err := d.conn.QueryRow(`
		SELECT name, best_score, total_games, last_played FROM players WHERE name = $1
	`, name).Scan(&p.Name, &p.BestScore, &p.TotalGames, &p.LastPlayed)
	if err != nil {
		return nil, fmt.Errorf("getting player: %w", err)
	}
	return &p, nil
}

// AllPlayers returns every player, oldest first, for warming the in-memory
// cache at startup.
func (d *DB) AllPlayers() ([]PlayerRecord, error) {
	rows, err := d.conn.Query(`
		SELECT name, best_score, total_games, last_played
		FROM players
		ORDER BY last_played ASC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}
	defer rows.Close()

	var records []PlayerRecord
	for rows.Next() {
		var p PlayerRecord
		if err := rows.Scan(&p.Name, &p.BestScore, &p.TotalGames, &p.LastPlayed); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

// TopPlayers returns the best scores in descending order, zero scores
// excluded.
func (d *DB) TopPlayers(limit int) ([]PlayerRecord, error) {
	rows, err := d.conn.Query(`
		SELECT name, best_score, total_games, last_played
		FROM players
		WHERE best_score > 0
		ORDER BY best_score DESC, last_played ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing top players: %w", err)
	}
	defer rows.Close()

	var records []PlayerRecord
	for rows.Next() {
		var p PlayerRecord
		if err := rows.Scan(&p.Name, &p.BestScore, &p.TotalGames, &p.LastPlayed); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}
