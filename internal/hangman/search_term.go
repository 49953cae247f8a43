// internal/hangman/search_term.go
//
// SearchTerm pairs the sought word of a round with what has been revealed
// of it so far.
//
// Invariants:
//   - found always has the same length as sought.
//   - Unrevealed positions hold Placeholder, except blanks in the sought
//     word, which are shown as-is and never need guessing.

package hangman

import "fmt"

// Placeholder marks a position that has not been revealed yet.
const Placeholder = '_'

// blank is copied into the found word instead of Placeholder.
const blank = ' '

// SearchTerm tracks one sought word against its revealed form.
type SearchTerm struct {
	sought *Term
	found  *Term
}

// NewSearchTerm starts tracking sought with nothing revealed.
func NewSearchTerm(sought *Term) (*SearchTerm, error) {
	if sought == nil {
		return nil, fmt.Errorf("%w: sought term is nil", ErrMissingArgument)
	}
	s := &SearchTerm{sought: sought.Clone()}
	s.ResetProgress()
	return s, nil
}

// Sought returns a copy of the word being searched for.
func (s *SearchTerm) Sought() *Term { return s.sought.Clone() }

// Found returns a copy of the revealed form.
func (s *SearchTerm) Found() *Term { return s.found.Clone() }

// TryChar reveals every occurrence of c (ignoring case) and reports whether
// c occurs in the sought word at all. Revealed positions take the sought
// word's own character, so the found word keeps the original casing.
func (s *SearchTerm) TryChar(c rune) bool {
	if !s.Contains(c) {
		return false
	}
	for i := 0; i < s.sought.Len(); i++ {
		if r := s.sought.At(i); runeMatch(r, c) {
			s.found.Set(i, r)
		}
	}
	return true
}

// TryWord reports whether w is the sought word, ignoring case.
// On a match the found word becomes w exactly as given.
func (s *SearchTerm) TryWord(w string) bool {
	if !foldEqual(s.sought.String(), w) {
		return false
	}
	s.found = NewTerm(w)
	return true
}

// Contains reports whether c occurs in the sought word, ignoring case.
func (s *SearchTerm) Contains(c rune) bool {
	for _, r := range s.sought.chars {
		if runeMatch(r, c) {
			return true
		}
	}
	return false
}

// ResetProgress hides every position again.
func (s *SearchTerm) ResetProgress() {
	mask := make([]rune, s.sought.Len())
	for i, r := range s.sought.chars {
		if r == blank {
			mask[i] = blank
		} else {
			mask[i] = Placeholder
		}
	}
	s.found = &Term{chars: mask}
}

// IsSolved reports whether the found word equals the sought word, ignoring case.
func (s *SearchTerm) IsSolved() bool {
	return s.sought.EqualFold(s.found)
}

// Equal reports whether both search terms have the same sought and found words.
func (s *SearchTerm) Equal(o *SearchTerm) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.sought.Equal(o.sought) && s.found.Equal(o.found)
}

// Clone returns an independent snapshot of s.
func (s *SearchTerm) Clone() *SearchTerm {
	return &SearchTerm{sought: s.sought.Clone(), found: s.found.Clone()}
}
