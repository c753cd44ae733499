package storage

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	store.Close()
}

func TestSaveAndRetrieveScores(t *testing.T) {
	store := testStore(t)

	for _, score := range []int{100, 250, 50, 175} {
		if _, err := store.SaveScore("lander", score); err != nil {
			t.Fatalf("SaveScore() error: %v", err)
		}
	}

	scores, err := store.TopScores("lander", 10)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("got %d scores, want 4", len(scores))
	}
	want := []int{250, 175, 100, 50}
	for i, e := range scores {
		if e.Score != want[i] {
			t.Errorf("scores[%d] = %d, want %d", i, e.Score, want[i])
		}
		if e.GameID != "lander" {
			t.Errorf("scores[%d].GameID = %q", i, e.GameID)
		}
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := testStore(t)
	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore("lander", i*10); err != nil {
			t.Fatalf("SaveScore() error: %v", err)
		}
	}

	scores, err := store.TopScores("lander", 5)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("got %d scores, want 5", len(scores))
	}
	if scores[0].Score != 140 {
		t.Errorf("top score = %d, want 140", scores[0].Score)
	}
}

func TestScoresIsolatedByGame(t *testing.T) {
	store := testStore(t)
	store.SaveScore("lander", 100)
	store.SaveScore("other", 999)

	scores, err := store.TopScores("lander", 10)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 100 {
		t.Errorf("scores = %+v, want only the lander entry", scores)
	}
}

func TestHighScore(t *testing.T) {
	store := testStore(t)

	high, err := store.HighScore("lander")
	if err != nil {
		t.Fatalf("HighScore() error: %v", err)
	}
	if high != 0 {
		t.Errorf("empty table high score = %d, want 0", high)
	}

	store.SaveScore("lander", 42)
	store.SaveScore("lander", 7)
	high, err = store.HighScore("lander")
	if err != nil {
		t.Fatalf("HighScore() error: %v", err)
	}
	if high != 42 {
		t.Errorf("high score = %d, want 42", high)
	}
}

func TestClearScores(t *testing.T) {
	store := testStore(t)
	store.SaveScore("lander", 100)
	store.SaveScore("other", 200)

	if err := store.ClearScores("lander"); err != nil {
		t.Fatalf("ClearScores() error: %v", err)
	}
	scores, _ := store.TopScores("lander", 10)
	if len(scores) != 0 {
		t.Errorf("lander scores remain after clear: %+v", scores)
	}
	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Error("clear must not touch other games")
	}
}

func TestSaveFlightRoundTrip(t *testing.T) {
	store := testStore(t)

	in := FlightEntry{
		Outcome:      "landed",
		LandingSpeed: 1.8,
		Damage:       12.5,
		FuelLeft:     430.25,
		Science:      10,
		Score:        219,
		Duration:     95,
	}
	id, err := store.SaveFlight(in)
	if err != nil {
		t.Fatalf("SaveFlight() error: %v", err)
	}
	if id == 0 {
		t.Error("inserted flight should have a non-zero ID")
	}

	flights, err := store.RecentFlights(10)
	if err != nil {
		t.Fatalf("RecentFlights() error: %v", err)
	}
	if len(flights) != 1 {
		t.Fatalf("got %d flights, want 1", len(flights))
	}
	got := flights[0]
	if got.Outcome != in.Outcome || got.Cause != "" ||
		got.LandingSpeed != in.LandingSpeed || got.Damage != in.Damage ||
		got.FuelLeft != in.FuelLeft || got.Science != in.Science ||
		got.Score != in.Score || got.Duration != in.Duration {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, in)
	}
}

func TestRecentFlightsOrder(t *testing.T) {
	store := testStore(t)

	// Inserted within the same timestamp second: the id breaks the tie, so
	// newest first means highest id first.
	for i := 1; i <= 5; i++ {
		if _, err := store.SaveFlight(FlightEntry{Outcome: "crashed", Cause: "HARD LANDING", Score: i}); err != nil {
			t.Fatalf("SaveFlight() error: %v", err)
		}
	}

	flights, err := store.RecentFlights(3)
	if err != nil {
		t.Fatalf("RecentFlights() error: %v", err)
	}
	if len(flights) != 3 {
		t.Fatalf("got %d flights, want 3", len(flights))
	}
	if flights[0].Score != 5 || flights[1].Score != 4 || flights[2].Score != 3 {
		t.Errorf("flights out of order: %d %d %d",
			flights[0].Score, flights[1].Score, flights[2].Score)
	}
}

func TestFlightStats(t *testing.T) {
	store := testStore(t)

	stats, err := store.GetFlightStats()
	if err != nil {
		t.Fatalf("GetFlightStats() error: %v", err)
	}
	if stats.Flights != 0 || stats.Landings != 0 || stats.BestScore != 0 {
		t.Errorf("empty table stats = %+v", stats)
	}

	store.SaveFlight(FlightEntry{Outcome: "landed", Damage: 20, Score: 180})
	store.SaveFlight(FlightEntry{Outcome: "crashed", Cause: "STRUCTURAL DAMAGE", Damage: 100, Score: 0})
	store.SaveFlight(FlightEntry{Outcome: "landed", Damage: 0, Score: 210})

	stats, err = store.GetFlightStats()
	if err != nil {
		t.Fatalf("GetFlightStats() error: %v", err)
	}
	if stats.Flights != 3 {
		t.Errorf("Flights = %d, want 3", stats.Flights)
	}
	if stats.Landings != 2 {
		t.Errorf("Landings = %d, want 2", stats.Landings)
	}
	if stats.BestScore != 210 {
		t.Errorf("BestScore = %d, want 210", stats.BestScore)
	}
	if stats.AvgDamage != 40 {
		t.Errorf("AvgDamage = %v, want 40", stats.AvgDamage)
	}
	if stats.LastFlown.IsZero() {
		t.Error("LastFlown should be set after recorded flights")
	}
}
