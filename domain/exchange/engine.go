package exchange

import (
	"fmt"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/roster"
)

// DefaultMaxAttempts bounds the rejection-sampling loop.
const DefaultMaxAttempts = 1000

// PermutationSource supplies random permutations to the engine. Permutation
// must return some rearrangement of [0..n); the engine rejects draws that
// map any index to itself and asks again.
type PermutationSource interface {
	Permutation(n int) []int
}

// Engine derives a gift-exchange pairing from a participant directory by
// rejection sampling: draw uniform permutations until one has no fixed
// point, then zip it with the directory.
type Engine struct {
	source      PermutationSource
	maxAttempts int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxAttempts overrides the rejection-sampling budget. Values below 1
// are ignored.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.maxAttempts = n
		}
	}
}

// NewEngine creates an engine drawing from src.
func NewEngine(src PermutationSource, opts ...Option) *Engine {
	e := &Engine{
		source:      src,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate draws one complete pairing for the directory. Every participant
// gives exactly once and receives exactly once, and nobody is paired with
// themselves. Givers appear in directory order.
//
// Directories with fewer than two participants cannot be deranged and
// return ErrInsufficientParticipants. If the attempt budget runs out the
// engine returns ErrDerangementUnattainable rather than looping forever.
func (e *Engine) Generate(dir roster.Directory) (AssignmentSet, error) {
	set, _, err := e.generate(dir)
	return set, err
}

// GenerateWithAttempts is Generate plus the number of permutations drawn,
// for draw audits.
func (e *Engine) GenerateWithAttempts(dir roster.Directory) (AssignmentSet, int, error) {
	return e.generate(dir)
}

func (e *Engine) generate(dir roster.Directory) (AssignmentSet, int, error) {
	n := dir.Len()
	if n < 2 {
		return AssignmentSet{}, 0, fmt.Errorf("%w: need at least 2, have %d", ErrInsufficientParticipants, n)
	}

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		perm := e.source.Permutation(n)
		if !IsDerangement(perm) {
			continue
		}

		assignments := make([]Assignment, n)
		for i := 0; i < n; i++ {
			assignments[i] = Assignment{
				Giver:    dir.At(i),
				Receiver: dir.At(perm[i]),
			}
		}
		return newAssignmentSet(assignments), attempt, nil
	}

	return AssignmentSet{}, e.maxAttempts, fmt.Errorf("%w: gave up after %d attempts", ErrDerangementUnattainable, e.maxAttempts)
}

// IsDerangement reports whether perm maps no index to itself.
func IsDerangement(perm []int) bool {
	for i, p := range perm {
		if i == p {
			return false
		}
	}
	return true
}
