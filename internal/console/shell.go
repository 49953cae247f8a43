// internal/console/shell.go
//
// Line-oriented terminal front-end for the hangman engine.
//
// Commands (one per line):
//   new            start a round
//   <letter>       guess a single character
//   solve <word>   guess the whole word (any input longer than one character
//                  that is not a command is treated the same way)
//   stop           give up the round in progress
//   reset          hide the current word again and restore all attempts
//   show           print the current word
//   stats          print the session scoreboard
//   help           list commands
//   quit | exit    leave
//
// Won/Lost notifications are printed as they arrive, before the guess that
// caused them returns.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/hangman"
	"github.com/robalobadob/hangman/internal/store"
)

const helpText = `Commands:
  new            start a new word
  <letter>       guess a letter
  solve <word>   guess the whole word
  stop           give up this word
  reset          start this word over
  show           show the word
  stats          show your score
  help           show this help
  quit           leave the game
`

// Shell drives an Engine from text input.
type Shell struct {
	engine *hangman.Engine
	store  store.Store
	in     io.Reader
	out    io.Writer
	log    zerolog.Logger
}

// New wires a Shell to e and subscribes it to e's notifications.
// st may be nil, in which case the stats command reports nothing.
func New(e *hangman.Engine, st store.Store, in io.Reader, out io.Writer, log zerolog.Logger) *Shell {
	s := &Shell{engine: e, store: st, in: in, out: out, log: log}
	e.OnWon(s.onWon)
	e.OnLost(s.onLost)
	return s
}

// Run reads commands until input ends, quit is entered or ctx is cancelled.
// Cancellation is noticed between lines.
func (s *Shell) Run(ctx context.Context) error {
	s.printf("Hangman. Type 'new' to start, 'help' for commands.\n")
	sc := bufio.NewScanner(s.in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if quit := s.handle(ctx, strings.TrimSpace(sc.Text())); quit {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return ctx.Err()
}

// handle executes one input line and reports whether the session should end.
func (s *Shell) handle(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	switch strings.ToLower(cmd) {
	case "":
		return false
	case "quit", "exit":
		s.printf("Bye.\n")
		return true
	case "help":
		s.printf("%s", helpText)
	case "new":
		if err := s.engine.StartGame(); err != nil {
			s.fail(err)
			return false
		}
		s.printWord()
	case "stop":
		if !s.engine.Started() {
			s.fail(hangman.ErrNotStarted)
			return false
		}
		s.engine.StopGame()
	case "reset":
		if !s.engine.Started() {
			s.fail(hangman.ErrNotStarted)
			return false
		}
		if err := s.engine.Reset(); err != nil {
			s.fail(err)
			return false
		}
		s.printWord()
	case "show":
		s.printWord()
	case "stats":
		s.printStats(ctx)
	case "solve":
		s.solve(strings.TrimSpace(arg))
	default:
		if utf8.RuneCountInString(line) == 1 {
			r, _ := utf8.DecodeRuneInString(line)
			s.attempt(r)
		} else {
			s.solve(line)
		}
	}
	return false
}

func (s *Shell) attempt(r rune) {
	ok, err := s.engine.Attempt(r)
	if err != nil {
		s.fail(err)
		return
	}
	if !ok {
		s.printf("No '%c' in the word.\n", r)
	}
	if s.engine.Started() {
		s.printWord()
	}
}

func (s *Shell) solve(word string) {
	if word == "" {
		s.printf("Usage: solve <word>\n")
		return
	}
	ok, err := s.engine.TryToSolve(word)
	if err != nil {
		s.fail(err)
		return
	}
	if !ok {
		s.printf("%q is not the word.\n", word)
	}
	if s.engine.Started() {
		s.printWord()
	}
}

func (s *Shell) onWon(o hangman.Outcome) {
	s.printf("%s\nYou won! Attempts used: %d of %d.\n", o.Term.Found().Spaced(), o.AttemptsUsed, o.AttemptsTotal)
}

func (s *Shell) onLost(o hangman.Outcome) {
	s.printf("You lost. The word was %q.\n", o.Term.Sought().String())
}

// printWord shows the current word and, while a round runs, the attempts left.
func (s *Shell) printWord() {
	st, err := s.engine.SelectedTerm()
	if err != nil {
		s.fail(err)
		return
	}
	left, err := s.engine.AttemptsLeft()
	if err != nil {
		s.printf("%s\n", st.Found().Spaced())
		return
	}
	s.printf("%s   (attempts left: %d)\n", st.Found().Spaced(), left)
}

func (s *Shell) printStats(ctx context.Context) {
	if s.store == nil {
		s.printf("No stats recorded.\n")
		return
	}
	sum, err := s.store.Summary(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	s.printf("Played: %d  Won: %d  Lost: %d  Streak: %d  Best streak: %d\n",
		sum.Played, sum.Won, sum.Lost, sum.Streak, sum.BestStreak)
}

// fail reports err to the player; anything but a missing round is also logged.
func (s *Shell) fail(err error) {
	if errors.Is(err, hangman.ErrNotStarted) {
		s.printf("No game in progress. Type 'new' to start.\n")
		return
	}
	s.log.Error().Err(err).Msg("command failed")
	s.printf("Error: %v\n", err)
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
