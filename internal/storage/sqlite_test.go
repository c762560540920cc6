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

func TestStoreCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "deeper", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Score: 1200, MaxStreak: 8, CompletedTasks: 15, FailedTasks: 3, Difficulty: 4, Tier: 2, DurationSecs: 180},
		{Score: 400, MaxStreak: 3, CompletedTasks: 6, FailedTasks: 5, Difficulty: 2, Tier: 1, DurationSecs: 90},
		{Score: 2500, MaxStreak: 12, CompletedTasks: 30, FailedTasks: 2, Difficulty: 7, Tier: 4, DurationSecs: 360},
	}
	for _, r := range runs {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if id <= 0 {
			t.Fatalf("SaveRun() returned id %d, want positive", id)
		}
	}

	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("TopRuns(2) returned %d runs", len(top))
	}
	if top[0].Score != 2500 || top[1].Score != 1200 {
		t.Errorf("TopRuns order = [%d, %d], want [2500, 1200]", top[0].Score, top[1].Score)
	}
	if top[0].CompletedTasks != 30 || top[0].Tier != 4 {
		t.Errorf("best run fields not round-tripped: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated by the database")
	}
}

func TestTopRunsEmpty(t *testing.T) {
	store := openTestStore(t)

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("TopRuns() on empty db returned %d runs", len(runs))
	}
}

func TestHighScoreAndBestStreak(t *testing.T) {
	store := openTestStore(t)

	// Empty database reports zeros, not errors.
	hs, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("HighScore() = %d on empty db, want 0", hs)
	}

	for _, r := range []RunRecord{
		{Score: 300, MaxStreak: 4},
		{Score: 900, MaxStreak: 2},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	hs, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 900 {
		t.Errorf("HighScore() = %d, want 900", hs)
	}

	bs, err := store.BestStreak()
	if err != nil {
		t.Fatalf("BestStreak() failed: %v", err)
	}
	if bs != 4 {
		t.Errorf("BestStreak() = %d, want 4", bs)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunRecord{
		{Score: 100, MaxStreak: 1},
		{Score: 300, MaxStreak: 5},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, want 2", stats.GamesPlayed)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.BestStreak != 5 {
		t.Errorf("BestStreak = %d, want 5", stats.BestStreak)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, want 200", stats.AvgScore)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{Score: 500}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("ClearRuns() left %d runs behind", len(runs))
	}
}
