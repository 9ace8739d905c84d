package db

import (
	"database/sql"
	"fmt"
	"time"
)

type SessionRecord struct {
	ID         int64     `json:"id"`
	PlayerName string    `json:"playerName"`
	Score      int       `json:"score"`
	PlayedAt   time.Time `json:"playedAt"`
}

// AppendSession records one completed run.
func (d *DB) AppendSession(name string, score int) error {
	_, err := d.conn.Exec(`
		INSERT INTO game_sessions (player_name, score) VALUES ($1, $2)
	`, name, score)
	if err != nil {
		return fmt.Errorf("appending session: %w", err)
	}
	return nil
}

// PlayerSessions returns a player's run history, newest first.
func (d *DB) PlayerSessions(name string, limit int) ([]SessionRecord, error) {
	rows, err := d.conn.Query(`
		SELECT id, player_name, score, played_at
		FROM game_sessions
		WHERE player_name = $1
		ORDER BY played_at DESC
		LIMIT $2
	`, name, limit)
	if err != nil {
		return nil, fmt.Errorf("listing player sessions: %w", err)
	}
	return scanSessions(rows)
}

// RecentSessions returns the newest runs across all players.
func (d *DB) RecentSessions(limit int) ([]SessionRecord, error) {
	rows, err := d.conn.Query(`
		SELECT id, player_name, score, played_at
		FROM game_sessions
		ORDER BY played_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent sessions: %w", err)
	}
	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) ([]SessionRecord, error) {
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var s SessionRecord
		if err := rows.Scan(&s.ID, &s.PlayerName, &s.Score, &s.PlayedAt); err != nil {
			return nil, err
		}
		records = append(records, s)
	}
	return records, rows.Err()
}
