// internal/hangman/selector.go
//
// Word selection for new rounds.
// A uniform random entry of the pool is drawn; if it repeats the previous
// round's word and the pool has something else to offer, it is redrawn.

package hangman

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Selector draws the next word from a pool.
type Selector struct {
	intn func(n int) int
}

// NewSelector returns a Selector using intn as its random source.
// intn must return a value in [0, n). A nil intn uses crypto/rand.
func NewSelector(intn func(n int) int) Selector {
	if intn == nil {
		intn = cryptoIntn
	}
	return Selector{intn: intn}
}

// Next picks a word from pool that differs from previous whenever the pool
// holds at least one entry that differs from it. previous may be nil.
func (s Selector) Next(pool []string, previous *Term) (*Term, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: word pool is empty", ErrInvalidConfiguration)
	}
	canAvoid := len(pool) > 1 && previous != nil && hasOther(pool, previous.String())
	for {
		t := NewTerm(pool[s.intn(len(pool))])
		if !canAvoid || !t.Equal(previous) {
			return t, nil
		}
	}
}

// hasOther reports whether pool holds an entry different from w.
func hasOther(pool []string, w string) bool {
	for _, p := range pool {
		if p != w {
			return true
		}
	}
	return false
}

// cryptoIntn returns a uniform value in [0, n) from crypto/rand.
func cryptoIntn(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}
