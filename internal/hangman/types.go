// internal/hangman/types.go
//
// Core type definitions for the hangman engine.
// Defines:
//   - State:   coarse lifecycle of the engine.
//   - Outcome: payload delivered to Won/Lost subscribers.

package hangman

import "github.com/google/uuid"

// State is a coarse representation of where the engine is in its lifecycle.
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateLost       State = "lost"
)

// Outcome describes a finished round. It is captured before the round is
// marked as no longer in progress.
type Outcome struct {
	RoundID       uuid.UUID   // Identifier assigned by StartGame.
	Result        State       // StateWon or StateLost.
	Term          *SearchTerm // Snapshot of the sought and found words.
	AttemptsUsed  int         // Failed attempts spent in the round.
	AttemptsTotal int         // Attempts budget of the engine.
}

// Handler receives an Outcome. Handlers run synchronously inside the call
// that finished the round.
type Handler func(Outcome)
