package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun(Run{GameID: "chroma", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(Run{GameID: "chroma-classic", Score: 500}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("chroma", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	classic, err := store.TopScores("chroma-classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classic))
	}
}

func TestStoreSaveRunDetails(t *testing.T) {
	store := openTestStore(t)

	run := Run{GameID: "chroma", Score: 80, Seed: 42, Ticks: 3600, Distance: 312.5}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.AllScores("chroma")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(scores))
	}
	got := scores[0]
	if got.ID != id || got.Seed != 42 || got.Ticks != 3600 || got.Distance != 312.5 {
		t.Errorf("stored run = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{GameID: "chroma", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("chroma", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("chroma")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "chroma", Score: 100})
	store.SaveRun(Run{GameID: "chroma", Score: 300})

	if high, _ = store.HighScore("chroma"); high != 300 {
		t.Errorf("Expected high score of 300 from history, got %d", high)
	}

	if err := store.SetHighScore("chroma", 450); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if high, _ = store.HighScore("chroma"); high != 450 {
		t.Errorf("Expected committed high score of 450, got %d", high)
	}
}

func TestStoreSetHighScoreKeepsBest(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		set  int
		want int
	}{
		{120, 120},
		{90, 120},
		{200, 200},
		{200, 200},
	}
	for _, s := range steps {
		if err := store.SetHighScore("chroma", s.set); err != nil {
			t.Fatalf("SetHighScore(%d) failed: %v", s.set, err)
		}
		high, err := store.HighScore("chroma")
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if high != s.want {
			t.Errorf("after SetHighScore(%d): high = %d, expected %d", s.set, high, s.want)
		}
	}

	if high, _ := store.HighScore("chroma-classic"); high != 0 {
		t.Errorf("high scores leaked across games: %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "chroma", Score: 100})
	store.SetHighScore("chroma", 250)
	store.SaveRun(Run{GameID: "chroma-classic", Score: 300})

	if err := store.ClearScores("chroma"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("chroma", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if high, _ := store.HighScore("chroma"); high != 0 {
		t.Errorf("Expected cleared high score, got %d", high)
	}
	if scores, _ := store.TopScores("chroma-classic", 10); len(scores) != 1 {
		t.Error("Classic scores should not be affected by clearing chroma")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRun(Run{GameID: "chroma", Score: i * 10})
	}

	scores, err := store.AllScores("chroma")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "chroma", Score: 40, Ticks: 600, Distance: 50})
	store.SaveRun(Run{GameID: "chroma", Score: 80, Ticks: 1200, Distance: 100})
	store.SaveRun(Run{GameID: "chroma-classic", Score: 10, Ticks: 100, Distance: 8})

	stats, err := store.GetGameStats("chroma")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 80 || stats.AvgScore != 60 || stats.TotalScore != 120 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.BestTicks != 1200 || stats.Distance != 150 {
		t.Errorf("run stats = ticks %d distance %v", stats.BestTicks, stats.Distance)
	}

	empty, err := store.GetGameStats("unknown")
	if err != nil {
		t.Fatalf("GetGameStats(unknown) failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["chroma-classic"].GamesCount != 1 {
		t.Errorf("all stats = %v", all)
	}
}
