package hangman

import "testing"

func TestTermSetUpdatesString(t *testing.T) {
	term := NewTerm("test")
	term.Set(1, 'a')
	if got := term.String(); got != "tast" {
		t.Fatalf("String() = %q, want %q", got, "tast")
	}
	if got := term.At(1); got != 'a' {
		t.Fatalf("At(1) = %q, want %q", got, 'a')
	}
}

func TestTermCharsIsACopy(t *testing.T) {
	term := NewTerm("abc")
	chars := term.Chars()
	chars[0] = 'z'
	if term.String() != "abc" {
		t.Fatalf("mutating Chars() leaked into term: %q", term.String())
	}
}

func TestTermEquality(t *testing.T) {
	cases := []struct {
		a, b      *Term
		equal     bool
		equalFold bool
	}{
		{NewTerm("test"), NewTerm("test"), true, true},
		{NewTerm("Test"), NewTerm("test"), false, true},
		{NewTerm("straße"), NewTerm("STRASSE"), false, false},
		{NewTerm("Wörter"), NewTerm("WÖRTER"), false, true},
		{NewTerm("test"), NewTerm("tent"), false, false},
		{NewTerm("test"), nil, false, false},
		{nil, nil, true, true},
	}
	for _, c := range cases {
		if got := c.a.Equal(c.b); got != c.equal {
			t.Errorf("%v.Equal(%v) = %v, want %v", c.a, c.b, got, c.equal)
		}
		if got := c.a.EqualFold(c.b); got != c.equalFold {
			t.Errorf("%v.EqualFold(%v) = %v, want %v", c.a, c.b, got, c.equalFold)
		}
	}
}

func TestTermSpaced(t *testing.T) {
	cases := map[string]string{
		"":     "",
		"a":    "a",
		"t__t": "t _ _ t",
	}
	for in, want := range cases {
		if got := NewTerm(in).Spaced(); got != want {
			t.Errorf("Spaced(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTermHandlesMultibyteCharacters(t *testing.T) {
	term := NewTerm("Wörter")
	if term.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", term.Len())
	}
	if term.At(1) != 'ö' {
		t.Fatalf("At(1) = %q, want %q", term.At(1), 'ö')
	}
}
