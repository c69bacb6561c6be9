// Package randx abstracts the randomness used for question sampling and
// exam shuffling so tests can substitute a seeded source and assert
// structural properties without flaking.
package randx

import (
	"math/rand"
	"time"
)

// Source provides the random operations the selection algorithms need.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Perm(n int) []int
	Shuffle(n int, swap func(i, j int))
}

// New returns a time-seeded Source for production use.
func New() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Seeded returns a deterministic Source for tests.
func Seeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
