package store

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/hangman"
)

func TestMemoryStoreSummary(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, won := range []bool{true, true, false, true, true, true} {
		if err := s.Save(ctx, Round{Won: won}); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	got, err := s.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	want := Summary{Played: 6, Won: 5, Lost: 1, Streak: 3, BestStreak: 3}
	if got != want {
		t.Fatalf("Summary = %+v, want %+v", got, want)
	}
}

func TestMemoryStoreRecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, w := range []string{"one", "two", "three"} {
		_ = s.Save(ctx, Round{Sought: w})
	}
	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 || got[0].Sought != "three" || got[1].Sought != "two" {
		t.Fatalf("Recent(2) = %+v", got)
	}
	all, _ := s.Recent(ctx, 0)
	if len(all) != 3 {
		t.Fatalf("Recent(0) returned %d rounds, want 3", len(all))
	}
}

func TestMemoryStoreHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemoryStore()
	if err := s.Save(ctx, Round{}); err == nil {
		t.Fatalf("Save with cancelled context succeeded")
	}
}

func TestAttachRecordsEngineRounds(t *testing.T) {
	e, err := hangman.New([]string{"test"}, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s := NewMemoryStore()
	Attach(e, s, zerolog.Nop())

	if err := e.StartGame(); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	if _, err := e.TryToSolve("test"); err != nil {
		t.Fatalf("TryToSolve: %v", err)
	}
	if err := e.StartGame(); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	e.StopGame()

	sum, _ := s.Summary(context.Background())
	if sum.Played != 2 || sum.Won != 1 || sum.Lost != 1 || sum.Streak != 0 {
		t.Fatalf("Summary = %+v", sum)
	}
	recent, _ := s.Recent(context.Background(), 1)
	if recent[0].Won || recent[0].Sought != "test" || recent[0].Found != "____" {
		t.Fatalf("latest round = %+v", recent[0])
	}
}

func TestFromOutcome(t *testing.T) {
	st, _ := hangman.NewSearchTerm(hangman.NewTerm("test"))
	st.TryChar('t')
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("x", 3600))
	r := FromOutcome(hangman.Outcome{Result: hangman.StateWon, Term: st, AttemptsUsed: 1, AttemptsTotal: 5}, at)
	if !r.Won || r.Found != "t__t" || r.AttemptsUsed != 1 || r.AttemptsTotal != 5 || r.FinishedAt.Location() != time.UTC {
		t.Fatalf("FromOutcome = %+v", r)
	}
}
