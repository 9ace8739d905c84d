package db

import (
	"os"
	"testing"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}
	database, err := Connect(dsn)
	if err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	if err := database.Migrate(); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	t.Cleanup(func() {
		database.conn.Exec("DELETE FROM game_sessions")
		database.conn.Exec("DELETE FROM players")
		database.Close()
	})
	return database
}

func TestConnect(t *testing.T) {
	database := getTestDB(t)
	if err := database.Ping(); err != nil {
		t.Errorf("Ping() error: %v", err)
	}
}

func TestMigrate(t *testing.T) {
	database := getTestDB(t)

	tables := []string{"players", "game_sessions"}
	for _, table := range tables {
		var exists bool
		err := database.conn.QueryRow(`
			SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_name = $1)
		`, table).Scan(&exists)
		if err != nil {
			t.Errorf("checking table %s: %v", table, err)
		}
		if !exists {
			t.Errorf("table %s does not exist", table)
		}
	}
}

func TestUpsertPlayer(t *testing.T) {
	database := getTestDB(t)

	if err := database.UpsertPlayer("Ana", 0, 0); err != nil {
		t.Fatalf("UpsertPlayer() error: %v", err)
	}

	// A second upsert with a higher best raises it and bumps the games count.
	if err := database.UpsertPlayer("Ana", 800, 1); err != nil {
		t.Fatalf("UpsertPlayer() update error: %v", err)
	}

	p, err := database.GetPlayer("Ana")
	if err != nil {
		t.Fatalf("GetPlayer() error: %v", err)
	}
	if p.BestScore != 800 || p.TotalGames != 1 {
		t.Errorf("player = %+v, want best 800, games 1", p)
	}

	// A lower best never overwrites the stored one.
	if err := database.UpsertPlayer("Ana", 300, 1); err != nil {
		t.Fatalf("UpsertPlayer() error: %v", err)
	}
	p, err = database.GetPlayer("Ana")
	if err != nil {
		t.Fatalf("GetPlayer() error: %v", err)
	}
	if p.BestScore != 800 || p.TotalGames != 2 {
		t.Errorf("player = %+v, want best 800, games 2", p)
	}
}

func TestSetBestScore(t *testing.T) {
	database := getTestDB(t)

	if err := database.UpsertPlayer("Bruno", 500, 0); err != nil {
		t.Fatalf("UpsertPlayer() error: %v", err)
	}

	if err := database.SetBestScore("Bruno", 900); err != nil {
		t.Fatalf("SetBestScore() error: %v", err)
	}
	p, err := database.GetPlayer("Bruno")
	if err != nil {
		t.Fatalf("GetPlayer() error: %v", err)
	}
	if p.BestScore != 900 {
		t.Errorf("best = %d, want 900", p.BestScore)
	}

	// Lower scores are ignored.
	if err := database.SetBestScore("Bruno", 100); err != nil {
		t.Fatalf("SetBestScore() error: %v", err)
	}
	p, err = database.GetPlayer("Bruno")
	if err != nil {
		t.Fatalf("GetPlayer() error: %v", err)
	}
	if p.BestScore != 900 {
		t.Errorf("best after lower set = %d, want 900", p.BestScore)
	}
}

func TestSessions(t *testing.T) {
	database := getTestDB(t)

	if err := database.UpsertPlayer("Clara", 0, 0); err != nil {
		t.Fatalf("UpsertPlayer() error: %v", err)
	}
	for _, s := range []int{1200, 3400, 2100} {
		if err := database.AppendSession("Clara", s); err != nil {
			t.Fatalf("AppendSession() error: %v", err)
		}
	}

	history, err := database.PlayerSessions("Clara", 10)
	if err != nil {
		t.Fatalf("PlayerSessions() error: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	if history[0].Score != 2100 {
		t.Errorf("newest score = %d, want 2100", history[0].Score)
	}

	recent, err := database.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() error: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("recent length = %d, want 2", len(recent))
	}
}

func TestTopPlayers(t *testing.T) {
	database := getTestDB(t)

	seed := map[string]int{"Ana": 800, "Bruno": 0, "Clara": 2400}
	for name, best := range seed {
		if err := database.UpsertPlayer(name, best, 0); err != nil {
			t.Fatalf("UpsertPlayer(%s) error: %v", name, err)
		}
	}

	top, err := database.TopPlayers(10)
	if err != nil {
		t.Fatalf("TopPlayers() error: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("top length = %d, want 2 (zero scores excluded)", len(top))
	}
	if top[0].Name != "Clara" || top[1].Name != "Ana" {
		t.Errorf("top order = %s, %s; want Clara, Ana", top[0].Name, top[1].Name)
	}
}

func TestAllPlayers(t *testing.T) {
	database := getTestDB(t)

	for _, name := range []string{"Ana", "Bruno"} {
		if err := database.UpsertPlayer(name, 0, 0); err != nil {
			t.Fatalf("UpsertPlayer(%s) error: %v", name, err)
		}
	}

	all, err := database.AllPlayers()
	if err != nil {
		t.Fatalf("AllPlayers() error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("players = %d, want 2", len(all))
	}
}
