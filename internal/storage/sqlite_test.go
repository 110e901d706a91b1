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

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("ticketrush", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("ticketrush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("ticketrush", (i+1)*100)
	}

	scores, err := store.TopScores("ticketrush", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("ticketrush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("ticketrush", 100)
	store.SaveScore("ticketrush", 300)
	store.SaveScore("ticketrush", 200)

	high, err = store.HighScore("ticketrush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("ticketrush", 100)
	store.SaveScore("ticketrush", 200)
	store.SaveScore("other", 300)

	if err := store.ClearScores("ticketrush"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("ticketrush", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Error("Other games should not be affected by the clear")
	}
}

func TestStoreSaveAndRetrieveSessions(t *testing.T) {
	store := openTestStore(t)

	recs := []SessionRecord{
		{GameID: "ticketrush", FinalScore: 420, TicketsCorrect: 4, TicketsFailed: 1, ComboPeak: 3, EndReason: "ticket_expired", DurationSecs: 95},
		{GameID: "ticketrush", FinalScore: 180, TicketsCorrect: 2, TicketsFailed: 0, ComboPeak: 3, EndReason: "penalty_expired", DurationSecs: 40},
	}
	for _, rec := range recs {
		if _, err := store.SaveSession(rec); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.RecentSessions("ticketrush", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}

	// Most recent first.
	if sessions[0].EndReason != "penalty_expired" {
		t.Errorf("Expected newest session first, got %s", sessions[0].EndReason)
	}
	if sessions[1].FinalScore != 420 || sessions[1].TicketsCorrect != 4 {
		t.Errorf("Session fields not persisted: %+v", sessions[1])
	}
}

func TestStoreSessionStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetSessionStats("ticketrush")
	if err != nil {
		t.Fatalf("GetSessionStats() on empty db failed: %v", err)
	}
	if stats.SessionsCount != 0 || stats.HighScore != 0 {
		t.Errorf("Empty stats should be zero, got %+v", stats)
	}

	store.SaveSession(SessionRecord{GameID: "ticketrush", FinalScore: 100, TicketsCorrect: 1, ComboPeak: 2, EndReason: "ticket_expired"})
	store.SaveSession(SessionRecord{GameID: "ticketrush", FinalScore: 300, TicketsCorrect: 3, ComboPeak: 4, EndReason: "deadline_expired"})

	stats, err = store.GetSessionStats("ticketrush")
	if err != nil {
		t.Fatalf("GetSessionStats() failed: %v", err)
	}
	if stats.SessionsCount != 2 {
		t.Errorf("Expected 2 sessions, got %d", stats.SessionsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.BestComboPeak != 4 {
		t.Errorf("Expected best combo peak 4, got %d", stats.BestComboPeak)
	}
	if stats.TotalCorrect != 4 {
		t.Errorf("Expected 4 total correct tickets, got %d", stats.TotalCorrect)
	}
}
