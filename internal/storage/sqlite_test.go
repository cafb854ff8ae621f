package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSaveRun(t *testing.T, store *Store, r RunRecord) {
	t.Helper()
	if _, err := store.SaveRun(r); err != nil {
		t.Fatalf("SaveRun(%+v) failed: %v", r, err)
	}
}

func TestOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpenTwiceKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("platform", 150); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("platform")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 150 {
		t.Errorf("high score after reopen = %d, expected 150", high)
	}
}

func TestTopScores(t *testing.T) {
	store := openTest(t)

	for _, s := range []int{100, 50, 500, 200, 300} {
		if _, err := store.SaveScore("platform", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("platform_sample", 999) //nolint:errcheck

	scores, err := store.TopScores("platform", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, expected 3", len(scores))
	}
	for i, want := range []int{500, 300, 200} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].GameID != "platform" {
			t.Errorf("scores[%d] belongs to %q", i, scores[i].GameID)
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("created_at was not decoded")
	}
}

func TestHighScore(t *testing.T) {
	store := openTest(t)

	high, err := store.HighScore("platform")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %d, expected 0", high)
	}

	store.SaveScore("platform", 100) //nolint:errcheck
	store.SaveScore("platform", 300) //nolint:errcheck
	store.SaveScore("platform", 200) //nolint:errcheck

	high, _ = store.HighScore("platform")
	if high != 300 {
		t.Errorf("high score = %d, expected 300", high)
	}
}

func TestRunLedger(t *testing.T) {
	store := openTest(t)

	runs := []RunRecord{
		{GameID: "platform", LevelID: "01-first-steps", Status: "lost", Ticks: 40, Coins: 1},
		{GameID: "platform", LevelID: "01-first-steps", Status: "won", Ticks: 600, Coins: 3},
		{GameID: "platform", LevelID: "01-first-steps", Status: "won", Ticks: 420, Coins: 3},
		{GameID: "platform", LevelID: "02-mind-the-gap", Status: "lost", Ticks: 90, Coins: 2},
		{GameID: "platform_sample", LevelID: "00-sample", Status: "won", Ticks: 300, Coins: 2},
	}
	for _, r := range runs {
		mustSaveRun(t, store, r)
	}

	t.Run("recent newest first", func(t *testing.T) {
		recent, err := store.RecentRuns("platform", 2)
		if err != nil {
			t.Fatalf("RecentRuns() failed: %v", err)
		}
		if len(recent) != 2 {
			t.Fatalf("got %d runs, expected 2", len(recent))
		}
		if recent[0].LevelID != "02-mind-the-gap" || recent[1].Ticks != 420 {
			t.Errorf("unexpected order: %+v", recent)
		}
	})

	t.Run("level stats", func(t *testing.T) {
		stats, err := store.LevelStats("platform")
		if err != nil {
			t.Fatalf("LevelStats() failed: %v", err)
		}
		want := []LevelStats{
			{LevelID: "01-first-steps", Attempts: 3, Wins: 2, BestTicks: 420, MaxCoins: 3},
			{LevelID: "02-mind-the-gap", Attempts: 1, Wins: 0, BestTicks: 0, MaxCoins: 2},
		}
		if len(stats) != len(want) {
			t.Fatalf("got %d levels, expected %d: %+v", len(stats), len(want), stats)
		}
		for i := range want {
			if stats[i] != want[i] {
				t.Errorf("stats[%d] = %+v, expected %+v", i, stats[i], want[i])
			}
		}
	})

	t.Run("unknown game", func(t *testing.T) {
		stats, err := store.LevelStats("nope")
		if err != nil {
			t.Fatalf("LevelStats() failed: %v", err)
		}
		if len(stats) != 0 {
			t.Errorf("expected no stats, got %+v", stats)
		}
	})
}

func TestSaveRunRejectsUnknownStatus(t *testing.T) {
	store := openTest(t)

	if _, err := store.SaveRun(RunRecord{GameID: "platform", LevelID: "x", Status: "playing"}); err == nil {
		t.Error("expected constraint error for non-terminal status")
	}
}

func TestClearScores(t *testing.T) {
	store := openTest(t)

	store.SaveScore("platform", 100)        //nolint:errcheck
	store.SaveScore("platform_sample", 300) //nolint:errcheck
	mustSaveRun(t, store, RunRecord{GameID: "platform", LevelID: "a", Status: "won"})
	mustSaveRun(t, store, RunRecord{GameID: "platform_sample", LevelID: "b", Status: "lost"})

	if err := store.ClearScores("platform"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("platform", 10); len(scores) != 0 {
		t.Errorf("expected 0 scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("platform", 10); len(runs) != 0 {
		t.Errorf("expected 0 runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("platform_sample", 10); len(scores) != 1 {
		t.Error("other game's scores were cleared")
	}
	if runs, _ := store.RecentRuns("platform_sample", 10); len(runs) != 1 {
		t.Error("other game's runs were cleared")
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTest(t)

	empty, err := store.GetGameStats("platform")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, s := range []int{100, 200, 300} {
		store.SaveScore("platform", s) //nolint:errcheck
	}

	stats, err := store.GetGameStats("platform")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 300 || stats.TotalScore != 600 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("avg = %v, expected 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played was not decoded")
	}
}

func TestMigrationsRecordSchemaVersion(t *testing.T) {
	store := openTest(t)

	var version int
	if err := store.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("reading user_version: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("user_version = %d, expected %d", version, len(migrations))
	}

	// Running again is a no-op.
	if err := store.migrate(); err != nil {
		t.Errorf("second migrate failed: %v", err)
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"driver time", want, want},
		{"sqlite text", "2026-01-02 03:04:05", want},
		{"rfc3339", "2026-01-02T03:04:05Z", want},
		{"garbage", "yesterday", time.Time{}},
		{"null", nil, time.Time{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTime(tc.in); !got.Equal(tc.want) {
				t.Errorf("parseTime(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}
