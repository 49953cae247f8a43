// internal/hangman/term.go
//
// Term is a word held as one rune buffer.
// The string form is always derived from the buffer, so writing a single
// character and reading the whole word can never disagree.
//
// Equality is case-sensitive (Equal); solving compares rune by rune ignoring
// case (EqualFold), so two terms of different length never match.

package hangman

import (
	"strings"
	"unicode"
)

// Term is a mutable word. The zero value is an empty word.
type Term struct {
	chars []rune
}

// NewTerm returns a Term holding s.
func NewTerm(s string) *Term {
	return &Term{chars: []rune(s)}
}

// String returns the word.
func (t *Term) String() string { return string(t.chars) }

// Len returns the number of characters (runes) in the word.
func (t *Term) Len() int { return len(t.chars) }

// At returns the character at position i.
func (t *Term) At(i int) rune { return t.chars[i] }

// Set replaces the character at position i.
func (t *Term) Set(i int, r rune) { t.chars[i] = r }

// Chars returns a copy of the characters.
func (t *Term) Chars() []rune {
	out := make([]rune, len(t.chars))
	copy(out, t.chars)
	return out
}

// Clone returns an independent copy of t.
func (t *Term) Clone() *Term {
	return &Term{chars: t.Chars()}
}

// Equal reports whether both terms hold the same characters.
// A nil term only equals another nil term.
func (t *Term) Equal(o *Term) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.String() == o.String()
}

// EqualFold reports whether both terms hold the same characters, ignoring case.
func (t *Term) EqualFold(o *Term) bool {
	if t == nil || o == nil {
		return t == o
	}
	return foldEqual(t.String(), o.String())
}

// Spaced returns the word with a blank between every two characters,
// the form a player sees on screen ("t _ _ t").
func (t *Term) Spaced() string {
	var b strings.Builder
	for i, r := range t.chars {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// foldEqual compares two strings rune by rune, ignoring case.
// Unlike full case folding it never equates strings of different rune counts
// ("straße" does not match "STRASSE").
func foldEqual(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if !runeMatch(ra[i], rb[i]) {
			return false
		}
	}
	return true
}

// runeMatch compares two characters ignoring case.
func runeMatch(a, b rune) bool {
	return unicode.ToLower(a) == unicode.ToLower(b)
}
