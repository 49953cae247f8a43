// internal/hangman/engine.go
//
// Game engine for hangman rounds.
// Responsibilities:
//   - Pick a new word per round, avoiding an immediate repeat.
//   - Apply character and whole-word guesses, spending attempts on misses.
//   - Track state transitions: not started → in progress → won/lost.
//   - Notify Won/Lost subscribers synchronously.
//
// Notes:
//   - After every guess loss is checked before win: a guess that both
//     spends the last attempt and completes the word loses the round.
//   - The engine is not safe for concurrent use.

package hangman

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Engine runs hangman rounds over a fixed word list and attempts budget.
type Engine struct {
	terms         []string
	attemptsTotal int
	attemptsLeft  int

	selected *SearchTerm
	roundID  uuid.UUID

	started bool
	won     bool
	lost    bool

	selector Selector
	log      zerolog.Logger

	onWon  []Handler
	onLost []Handler
}

// Option configures an Engine.
type Option func(*Engine)

// WithRandom sets the random source used to pick words.
// intn must return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(e *Engine) { e.selector = NewSelector(intn) }
}

// WithLogger sets the logger for round lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New constructs an engine. terms may be empty; that is reported by
// StartGame. A nil terms slice is a missing argument.
func New(terms []string, attempts int, opts ...Option) (*Engine, error) {
	if attempts <= 0 {
		return nil, fmt.Errorf("%w: attempts must be positive, got %d", ErrInvalidConfiguration, attempts)
	}
	if terms == nil {
		return nil, fmt.Errorf("%w: term list is nil", ErrMissingArgument)
	}
	e := &Engine{
		terms:         terms,
		attemptsTotal: attempts,
		attemptsLeft:  attempts,
		selector:      NewSelector(nil),
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// OnWon registers h to be called when a round is won.
func (e *Engine) OnWon(h Handler) { e.onWon = append(e.onWon, h) }

// OnLost registers h to be called when a round is lost.
func (e *Engine) OnLost(h Handler) { e.onLost = append(e.onLost, h) }

// StartGame begins a new round with a freshly selected word.
func (e *Engine) StartGame() error {
	var previous *Term
	if e.selected != nil {
		previous = e.selected.sought
	}
	next, err := e.selector.Next(e.terms, previous)
	if err != nil {
		return err
	}
	st, err := NewSearchTerm(next)
	if err != nil {
		return err
	}

	e.selected = st
	e.roundID = uuid.New()
	e.won, e.lost = false, false
	e.attemptsLeft = e.attemptsTotal
	e.started = true

	e.log.Debug().
		Str("round", e.roundID.String()).
		Int("length", next.Len()).
		Int("attemptsTotal", e.attemptsTotal).
		Msg("round started")
	return nil
}

// NewGame is an alias for StartGame.
func (e *Engine) NewGame() error { return e.StartGame() }

// StopGame ends the round in progress as lost. It does nothing otherwise.
func (e *Engine) StopGame() {
	if e.started {
		e.finish(StateLost)
	}
}

// Reset clears the outcome flags, restores the full attempts budget and hides
// the current word again. It keeps the current word.
func (e *Engine) Reset() error {
	if e.selected == nil {
		return fmt.Errorf("%w: no round to reset", ErrNotStarted)
	}
	e.won, e.lost = false, false
	e.attemptsLeft = e.attemptsTotal
	e.selected.ResetProgress()
	return nil
}

// Attempt guesses a single character and reports whether it occurs in the word.
// Every occurrence is revealed; a miss costs one attempt.
func (e *Engine) Attempt(c rune) (bool, error) {
	if !e.started {
		return false, fmt.Errorf("%w: cannot attempt", ErrNotStarted)
	}
	ok := e.selected.TryChar(c)
	if !ok {
		e.attemptsLeft--
	}
	e.evaluate()
	return ok, nil
}

// TryToSolve guesses the whole word and reports whether it matched.
// A wrong guess costs one attempt.
func (e *Engine) TryToSolve(word string) (bool, error) {
	if !e.started {
		return false, fmt.Errorf("%w: cannot solve", ErrNotStarted)
	}
	ok := e.selected.TryWord(word)
	if !ok {
		e.attemptsLeft--
	}
	e.evaluate()
	return ok, nil
}

// AttemptsLeft returns the attempts remaining in the round in progress.
func (e *Engine) AttemptsLeft() (int, error) {
	if !e.started {
		return 0, fmt.Errorf("%w: no attempts left outside a round", ErrNotStarted)
	}
	return e.attemptsLeft, nil
}

// AttemptsUsed returns the attempts spent in the round in progress.
func (e *Engine) AttemptsUsed() (int, error) {
	if !e.started {
		return 0, fmt.Errorf("%w: no attempts used outside a round", ErrNotStarted)
	}
	return e.attemptsTotal - e.attemptsLeft, nil
}

// AttemptsTotal returns the attempts budget of every round.
func (e *Engine) AttemptsTotal() int { return e.attemptsTotal }

// SelectedTerm returns a snapshot of the current or last finished round's
// word. It fails until a round has been started.
func (e *Engine) SelectedTerm() (*SearchTerm, error) {
	if !e.started && e.won == e.lost {
		return nil, fmt.Errorf("%w: no selected term before the first round", ErrNotStarted)
	}
	return e.selected.Clone(), nil
}

// Started reports whether a round is in progress.
func (e *Engine) Started() bool { return e.started }

// Won reports whether the last round was won.
func (e *Engine) Won() bool { return e.won }

// Lost reports whether the last round was lost.
func (e *Engine) Lost() bool { return e.lost }

// RoundID returns the identifier of the current or last round, or uuid.Nil.
func (e *Engine) RoundID() uuid.UUID { return e.roundID }

// State reports the engine's lifecycle state.
func (e *Engine) State() State {
	switch {
	case e.started:
		return StateInProgress
	case e.won:
		return StateWon
	case e.lost:
		return StateLost
	}
	return StateNotStarted
}

// evaluate runs after every guess. Loss wins the tie.
func (e *Engine) evaluate() {
	if e.started && e.attemptsLeft <= 0 {
		e.finish(StateLost)
	} else if e.selected.IsSolved() {
		e.finish(StateWon)
	}
}

// finish records the outcome, leaves the in-progress state and notifies.
func (e *Engine) finish(result State) {
	e.won = result == StateWon
	e.lost = result == StateLost

	out := Outcome{
		RoundID:       e.roundID,
		Result:        result,
		Term:          e.selected.Clone(),
		AttemptsUsed:  e.attemptsTotal - e.attemptsLeft,
		AttemptsTotal: e.attemptsTotal,
	}
	e.started = false

	e.log.Debug().
		Str("round", out.RoundID.String()).
		Str("result", string(result)).
		Int("attemptsUsed", out.AttemptsUsed).
		Int("attemptsTotal", out.AttemptsTotal).
		Msg("round finished")

	handlers := e.onLost
	if result == StateWon {
		handlers = e.onWon
	}
	for _, h := range handlers {
		h(out)
	}
}
