package stats

import (
	"os"
	"testing"

	"brainrush/internal/db"
)

func getTestQueries(t *testing.T) *Queries {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}
	database, err := db.Connect(dsn)
	if err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	if err := database.Migrate(); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	t.Cleanup(func() {
		database.Exec("DELETE FROM game_sessions")
		database.Exec("DELETE FROM players")
		database.Close()
	})
	return NewQueries(database)
}

func seedPlayer(t *testing.T, q *Queries, name string, best int, scores ...int) {
	t.Helper()
	if err := q.DB.UpsertPlayer(name, best, len(scores)); err != nil {
		t.Fatalf("UpsertPlayer(%s) error: %v", name, err)
	}
	for _, s := range scores {
		if err := q.DB.AppendSession(name, s); err != nil {
			t.Fatalf("AppendSession(%s) error: %v", name, err)
		}
	}
}

func TestGetPlayerSummary(t *testing.T) {
	q := getTestQueries(t)
	seedPlayer(t, q, "Ana", 3000, 1000, 3000, 2000)

	summary, err := q.GetPlayerSummary("Ana")
	if err != nil {
		t.Fatalf("GetPlayerSummary() error: %v", err)
	}
	if summary.BestScore != 3000 || summary.TotalGames != 3 {
		t.Errorf("summary = %+v, want best 3000, games 3", summary)
	}
	if summary.AverageScore != 2000 {
		t.Errorf("average = %v, want 2000", summary.AverageScore)
	}
	if summary.HighestRun != 3000 {
		t.Errorf("highest = %d, want 3000", summary.HighestRun)
	}
	if len(summary.History) != 3 || summary.History[0].Score != 2000 {
		t.Errorf("history = %+v, want 3 entries newest first", summary.History)
	}
}

func TestGetPlayerSummary_Unknown(t *testing.T) {
	q := getTestQueries(t)
	if _, err := q.GetPlayerSummary("nobody"); err == nil {
		t.Error("expected an error for an unknown player")
	}
}

func TestGetLeaderboard(t *testing.T) {
	q := getTestQueries(t)
	seedPlayer(t, q, "Ana", 800)
	seedPlayer(t, q, "Bruno", 2400)
	seedPlayer(t, q, "Clara", 0)

	rows, err := q.GetLeaderboard(10)
	if err != nil {
		t.Fatalf("GetLeaderboard() error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (zero scores excluded)", len(rows))
	}
	if rows[0].Name != "Bruno" || rows[0].Rank != 1 {
		t.Errorf("first row = %+v, want Bruno at rank 1", rows[0])
	}
	if rows[1].Name != "Ana" || rows[1].Rank != 2 {
		t.Errorf("second row = %+v, want Ana at rank 2", rows[1])
	}
}

func TestGetGlobalStats(t *testing.T) {
	q := getTestQueries(t)
	seedPlayer(t, q, "Ana", 3000, 1000, 3000)

	stats, err := q.GetGlobalStats()
	if err != nil {
		t.Fatalf("GetGlobalStats() error: %v", err)
	}
	if stats.TotalPlayers != 1 || stats.TotalSessions != 2 {
		t.Errorf("stats = %+v, want 1 player, 2 sessions", stats)
	}
	if stats.TopScore != 3000 {
		t.Errorf("top = %d, want 3000", stats.TopScore)
	}
	if stats.AverageScore != 2000 {
		t.Errorf("average = %v, want 2000", stats.AverageScore)
	}
}
