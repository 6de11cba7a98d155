package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Source draws uniform permutations from math/rand. A mutex guards the
// generator so a shared Source stays safe under concurrent draws.
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a time-seeded Source for production draws.
func New() *Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a Source with an explicit seed for reproducible draws.
// Seed 0 falls back to the current time, matching the --seed flag contract.
func NewSeeded(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rnd: rand.New(rand.NewSource(seed))} // #nosec G404
}

// Permutation returns a uniform random permutation of [0..n).
func (s *Source) Permutation(n int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Perm(n)
}
