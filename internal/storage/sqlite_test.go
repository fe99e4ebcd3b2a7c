package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("outbreak", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different mode
	if _, err := store.SaveScore("outbreak_endless", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("outbreak", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("Score %d: expected %d, got %d", i, w, scores[i].Score)
		}
	}

	high, err := store.HighScore("outbreak")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 200 {
		t.Errorf("Expected high score 200, got %d", high)
	}
}

func TestHighScoreEmptyGame(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("outbreak")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty game, got %d", high)
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore("outbreak", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("outbreak", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with limit 5, got %d", len(scores))
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("outbreak", 100)
	store.SaveScore("outbreak_endless", 200)

	if err := store.ClearScores("outbreak"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("outbreak", 10)
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("outbreak_endless", 10)
	if len(other) != 1 {
		t.Errorf("Clearing one game should not touch the other, got %d", len(other))
	}
}

func TestSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(RunRecord{
		GameID:       "outbreak",
		Wave:         7,
		Kills:        42,
		PointsEarned: 3100,
		PointsSpent:  900,
		Survived:     false,
		DurationSecs: 310,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	_, err = store.SaveRun(RunRecord{
		GameID:       "outbreak",
		Wave:         10,
		Kills:        88,
		PointsEarned: 6400,
		PointsSpent:  1500,
		Survived:     true,
		DurationSecs: 620,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("outbreak", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	var survivedRun *RunRecord
	for i := range runs {
		if runs[i].Survived {
			survivedRun = &runs[i]
		}
	}
	if survivedRun == nil {
		t.Fatal("Expected one survived run")
	}
	if survivedRun.Wave != 10 || survivedRun.Kills != 88 {
		t.Errorf("Survived run fields wrong: %+v", survivedRun)
	}

	best, err := store.BestWave("outbreak")
	if err != nil {
		t.Fatalf("BestWave() failed: %v", err)
	}
	if best != 10 {
		t.Errorf("Expected best wave 10, got %d", best)
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("outbreak", 100)
	store.SaveScore("outbreak", 300)

	stats, err := store.GetGameStats("outbreak")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("Expected total 400, got %d", stats.TotalScore)
	}
}
