package players

import "testing"

func TestEnsure_CreatesOnce(t *testing.T) {
	s := NewStore()

	p, created := s.Ensure("Ana")
	if !created {
		t.Error("first Ensure should create")
	}
	if p.Name != "Ana" || p.BestScore != 0 || p.TotalGames != 0 {
		t.Errorf("unexpected player: %+v", p)
	}

	_, created = s.Ensure("Ana")
	if created {
		t.Error("second Ensure should not create")
	}
	if got := len(s.List()); got != 1 {
		t.Errorf("player count = %d, want 1", got)
	}
}

func TestRecordResult(t *testing.T) {
	s := NewStore()
	s.Ensure("Ana")

	best, isNew := s.RecordResult("Ana", 500)
	if best != 500 || !isNew {
		t.Errorf("first run: best = %d, isNew = %v, want 500/true", best, isNew)
	}

	best, isNew = s.RecordResult("Ana", 300)
	if best != 500 || isNew {
		t.Errorf("worse run: best = %d, isNew = %v, want 500/false", best, isNew)
	}

	best, isNew = s.RecordResult("Ana", 900)
	if best != 900 || !isNew {
		t.Errorf("record run: best = %d, isNew = %v, want 900/true", best, isNew)
	}

	p, _ := s.Get("Ana")
	if p.TotalGames != 3 {
		t.Errorf("totalGames = %d, want 3", p.TotalGames)
	}
	if p.BestScore != 900 {
		t.Errorf("bestScore = %d, want 900", p.BestScore)
	}
}

func TestRecordResult_UnknownNameCreates(t *testing.T) {
	s := NewStore()
	best, isNew := s.RecordResult("Ghost", 250)
	if best != 250 || !isNew {
		t.Errorf("best = %d, isNew = %v, want 250/true", best, isNew)
	}
}

func TestLoad_PreservesOrder(t *testing.T) {
	s := NewStore()
	s.Load([]Player{
		{Name: "Ana", BestScore: 900, TotalGames: 3},
		{Name: "Bo", BestScore: 700, TotalGames: 1},
		{Name: "Cid", BestScore: 0, TotalGames: 0},
	})

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("count = %d, want 3", len(list))
	}
	for i, want := range []string{"Ana", "Bo", "Cid"} {
		if list[i].Name != want {
			t.Errorf("list[%d] = %q, want %q", i, list[i].Name, want)
		}
	}
	if list[0].BestScore != 900 || list[0].TotalGames != 3 {
		t.Errorf("Ana not loaded: %+v", list[0])
	}
}

func TestList_ArrivalOrder(t *testing.T) {
	s := NewStore()
	s.Ensure("Cid")
	s.Ensure("Ana")
	s.Ensure("Bo")

	list := s.List()
	for i, want := range []string{"Cid", "Ana", "Bo"} {
		if list[i].Name != want {
			t.Errorf("list[%d] = %q, want %q", i, list[i].Name, want)
		}
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		raw    string
		connID string
		want   string
	}{
		{"Ana", "abcdef123456", "Ana"},
		{"  Ana  ", "abcdef123456", "Ana"},
		{"", "abcdef123456", "Player abcdef"},
		{"   ", "abc", "Player abc"},
	}
	for _, tt := range tests {
		if got := CleanName(tt.raw, tt.connID); got != tt.want {
			t.Errorf("CleanName(%q, %q) = %q, want %q", tt.raw, tt.connID, got, tt.want)
		}
	}
}
