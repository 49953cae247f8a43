// internal/hangman/errors.go
//
// Sentinel errors for the hangman engine.
// Every error the package returns wraps one of these.

package hangman

import "errors"

// Error kinds returned by the engine. Callers match them with errors.Is;
// the returned errors usually wrap one of these with more context.
var (
	// ErrInvalidConfiguration covers a non-positive attempts budget and an
	// empty word pool at round start.
	ErrInvalidConfiguration = errors.New("hangman: invalid configuration")

	// ErrMissingArgument is returned for a nil word list or a nil sought term.
	ErrMissingArgument = errors.New("hangman: missing argument")

	// ErrNotStarted is returned by operations that need a round in progress.
	ErrNotStarted = errors.New("hangman: game not started")
)
