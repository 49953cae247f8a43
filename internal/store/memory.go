// internal/store/memory.go
//
// In-memory history of finished hangman rounds.
// It backs the session scoreboard shown by the console.
//
// Characteristics:
//   - Rounds are appended in the order they finish.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/hangman"
)

// Round is one finished round.
type Round struct {
	ID            uuid.UUID
	Sought        string
	Found         string
	Won           bool
	AttemptsUsed  int
	AttemptsTotal int
	FinishedAt    time.Time
}

// Summary aggregates every saved round.
type Summary struct {
	Played     int
	Won        int
	Lost       int
	Streak     int // consecutive wins up to the latest round
	BestStreak int
}

// Store defines the interface for round history.
type Store interface {
	// Save appends a finished round.
	Save(ctx context.Context, r Round) error

	// Summary returns totals over all saved rounds.
	Summary(ctx context.Context) (Summary, error)

	// Recent returns up to n rounds, newest first.
	Recent(ctx context.Context, n int) ([]Round, error)
}

// memory is a slice-based Store implementation.
type memory struct {
	mu      sync.RWMutex // guards rounds and summary
	rounds  []Round
	summary Summary
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Save appends r and updates the running totals.
func (m *memory) Save(ctx context.Context, r Round) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rounds = append(m.rounds, r)
	m.summary.Played++
	if r.Won {
		m.summary.Won++
		m.summary.Streak++
		if m.summary.Streak > m.summary.BestStreak {
			m.summary.BestStreak = m.summary.Streak
		}
	} else {
		m.summary.Lost++
		m.summary.Streak = 0
	}
	return nil
}

// Summary returns a copy of the running totals.
func (m *memory) Summary(ctx context.Context) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.summary, nil
}

// Recent returns up to n rounds, newest first. n <= 0 returns every round.
func (m *memory) Recent(ctx context.Context, n int) ([]Round, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if n <= 0 || n > len(m.rounds) {
		n = len(m.rounds)
	}
	out := make([]Round, 0, n)
	for i := len(m.rounds) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.rounds[i])
	}
	return out, nil
}

// FromOutcome converts an engine outcome into a Round finished at t.
func FromOutcome(o hangman.Outcome, t time.Time) Round {
	return Round{
		ID:            o.RoundID,
		Sought:        o.Term.Sought().String(),
		Found:         o.Term.Found().String(),
		Won:           o.Result == hangman.StateWon,
		AttemptsUsed:  o.AttemptsUsed,
		AttemptsTotal: o.AttemptsTotal,
		FinishedAt:    t.UTC(),
	}
}

// Attach records every round e finishes into s.
// Save failures are logged; they never interrupt the game.
func Attach(e *hangman.Engine, s Store, log zerolog.Logger) {
	record := func(o hangman.Outcome) {
		if err := s.Save(context.Background(), FromOutcome(o, time.Now())); err != nil {
			log.Warn().Err(err).Str("round", o.RoundID.String()).Msg("save round")
		}
	}
	e.OnWon(record)
	e.OnLost(record)
}
