package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := Open(Memory)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, s *Store, game string, scores ...int) {
	t.Helper()
	for _, score := range scores {
		if _, err := s.SaveScore(game, score, false); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
}

func TestStoreOpenFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, "snake", 70)
	store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("Database file was not created in nested directory")
	}

	// Scores survive reopening a file database.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if high, _ := store.HighScore("snake"); high != 70 {
		t.Errorf("Expected 70 after reopen, got %d", high)
	}
}

func TestStoreMemoryIsShared(t *testing.T) {
	store := openMemory(t)
	if store.Path() != Memory {
		t.Errorf("Expected memory path, got %q", store.Path())
	}

	// A second connection would see an empty schema; the pool keeps one.
	for i := 0; i < 20; i++ {
		mustSave(t, store, "tetris", i*100)
	}
	if high, err := store.HighScore("tetris"); err != nil || high != 1900 {
		t.Errorf("HighScore() = %d, %v", high, err)
	}

	empty, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") failed: %v", err)
	}
	defer empty.Close()
	if high, _ := empty.HighScore("tetris"); high != 0 {
		t.Error("Separate in-memory stores must not share rows")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openMemory(t)
	mustSave(t, store, "flappy", 10, 5, 20)
	mustSave(t, store, "snake", 500)

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 20 || scores[1].Score != 10 || scores[2].Score != 5 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	for _, s := range scores {
		if s.GameID != "flappy" || s.CreatedAt.IsZero() {
			t.Errorf("Unexpected entry %+v", s)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openMemory(t)
	mustSave(t, store, "snake", 100, 200, 300, 400, 500)

	tests := []struct {
		limit int
		want  int
	}{
		{3, 3},
		{0, 5},
		{-1, 5},
		{50, 5},
	}
	for _, tc := range tests {
		scores, err := store.TopScores("snake", tc.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tc.limit, err)
		}
		if len(scores) != tc.want {
			t.Errorf("TopScores(%d) returned %d entries, expected %d", tc.limit, len(scores), tc.want)
		}
	}
}

func TestStoreTiesKeepPlayOrder(t *testing.T) {
	store := openMemory(t)
	first, _ := store.SaveScore("snake", 42, true)
	second, _ := store.SaveScore("snake", 42, false)

	scores, _ := store.TopScores("snake", 2)
	if scores[0].ID != first || scores[1].ID != second {
		t.Errorf("Expected ids %d, %d; got %v", first, second, scores)
	}
	if !scores[0].NewHigh || scores[1].NewHigh {
		t.Error("new_high flag lost")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openMemory(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "flappy", 1, 3, 2)
	if high, _ = store.HighScore("flappy"); high != 3 {
		t.Errorf("Expected high score of 3, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openMemory(t)
	mustSave(t, store, "flappy", 100, 200)
	mustSave(t, store, "snake", 300)

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("flappy", 10); len(scores) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("snake", 10); len(scores) != 1 {
		t.Error("Snake scores should not be affected by clearing flappy")
	}
}

func TestStoreStats(t *testing.T) {
	store := openMemory(t)

	empty, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	mustSave(t, store, "tetris", 100, 300)
	mustSave(t, store, "snake", 7)

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["snake"].HighScore != 7 {
		t.Errorf("Unexpected all-games stats %v", all)
	}
}
