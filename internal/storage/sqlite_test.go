package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/randompac/internal/core"
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

func save(t *testing.T, store *Store, rec SessionRecord) string {
	t.Helper()
	id, err := store.SaveSession(rec)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveSessionRoundTrip(t *testing.T) {
	store := openTestStore(t)
	when := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	rec := NewRecord("ana", core.Outcome{
		Game:       "randompac",
		Score:      2450,
		Duration:   93500 * time.Millisecond,
		Won:        true,
		Algorithm:  "xorshift",
		Seed:       1<<63 + 5,
		Difficulty: "hard",
		Level:      "Classic",
	})
	rec.CreatedAt = when
	id := save(t, store, rec)
	if id == "" {
		t.Fatal("expected a generated session ID")
	}

	got, err := store.RecentSessions("ana", 5)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(got))
	}
	r := got[0]
	if r.ID != id || r.Player != "ana" || r.Game != "randompac" || r.Score != 2450 || !r.Won {
		t.Errorf("unexpected record %+v", r)
	}
	if r.Duration != 93500*time.Millisecond {
		t.Errorf("duration = %v", r.Duration)
	}
	if r.Seed != 1<<63+5 {
		t.Errorf("seed = %d, want %d", r.Seed, uint64(1<<63+5))
	}
	if r.Algorithm != "xorshift" || r.Difficulty != "hard" || r.Level != "Classic" {
		t.Errorf("settings not stored: %+v", r)
	}
	if !r.CreatedAt.Equal(when) {
		t.Errorf("created_at = %v, want %v", r.CreatedAt, when)
	}
}

func TestSaveSessionRequiresPlayer(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveSession(SessionRecord{Score: 10}); err == nil {
		t.Error("expected error for a session without player")
	}
}

func TestTopSessionsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{300, 500, 100, 500, 200} {
		save(t, store, SessionRecord{ID: string(rune('a' + i)), Player: "p", Score: score})
	}

	top, err := store.TopSessions(3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(top))
	}
	if top[0].ID != "b" || top[1].ID != "d" || top[2].Score != 300 {
		t.Errorf("unexpected order: %+v", top)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	save(t, store, SessionRecord{Player: "a", Score: 100})
	save(t, store, SessionRecord{Player: "b", Score: 300})
	save(t, store, SessionRecord{Player: "a", Score: 200})

	if high, _ = store.HighScore(); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestPlayerStats(t *testing.T) {
	store := openTestStore(t)
	day := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	save(t, store, SessionRecord{Player: "ana", Score: 800, Duration: time.Minute, Algorithm: "lcg", Difficulty: "classic", CreatedAt: day})
	save(t, store, SessionRecord{Player: "ana", Score: 1500, Duration: 2 * time.Minute, Won: true, Algorithm: "pam", Difficulty: "extreme", CreatedAt: day.Add(time.Hour)})
	save(t, store, SessionRecord{Player: "ana", Score: 1200, Duration: 30 * time.Second, Algorithm: "xorshift", Difficulty: "hard", CreatedAt: day.Add(48 * time.Hour)})
	save(t, store, SessionRecord{Player: "bob", Score: 9000, CreatedAt: day})

	stats, err := store.PlayerStats("ana")
	if err != nil {
		t.Fatalf("PlayerStats() failed: %v", err)
	}
	if stats.Games != 3 || stats.Wins != 1 || stats.BestScore != 1500 {
		t.Errorf("unexpected counters %+v", stats)
	}
	if stats.TotalTime != 3*time.Minute+30*time.Second {
		t.Errorf("total time = %v", stats.TotalTime)
	}
	if stats.BestAlgorithm != "pam" || stats.BestDifficulty != "extreme" {
		t.Errorf("best session settings = %s/%s", stats.BestAlgorithm, stats.BestDifficulty)
	}
	if !stats.LastPlayed.Equal(day.Add(48 * time.Hour)) {
		t.Errorf("last played = %v", stats.LastPlayed)
	}

	if _, err := store.PlayerStats("nobody"); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestAllPlayersAndClear(t *testing.T) {
	store := openTestStore(t)

	save(t, store, SessionRecord{Player: "ana", Score: 800, Algorithm: "lcg"})
	save(t, store, SessionRecord{Player: "bob", Score: 1200, Algorithm: "pam"})
	save(t, store, SessionRecord{Player: "bob", Score: 100, Algorithm: "lcg"})

	players, err := store.AllPlayers()
	if err != nil {
		t.Fatalf("AllPlayers() failed: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("Expected 2 players, got %d", len(players))
	}
	if players[0].Player != "bob" || players[0].Games != 2 || players[0].BestAlgorithm != "pam" {
		t.Errorf("unexpected first profile %+v", players[0])
	}

	n, err := store.ClearPlayer("bob")
	if err != nil {
		t.Fatalf("ClearPlayer() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d sessions, want 2", n)
	}
	if _, err := store.PlayerStats("bob"); !errors.Is(err, ErrPlayerNotFound) {
		t.Error("bob should be gone")
	}
	if stats, err := store.PlayerStats("ana"); err != nil || stats.Games != 1 {
		t.Error("clearing bob should not affect ana")
	}
}
