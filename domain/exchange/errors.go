package exchange

import "errors"

// Domain errors - centralized error definitions
var (
	// ErrInsufficientParticipants means the directory is too small for a
	// derangement to exist (n < 2).
	ErrInsufficientParticipants = errors.New("insufficient participants for exchange")

	// ErrDerangementUnattainable means the attempt budget ran out before a
	// fixed-point-free permutation was drawn. With any honest source this is
	// astronomically unlikely; seeing it indicates a broken PermutationSource.
	ErrDerangementUnattainable = errors.New("derangement unattainable within attempt budget")
)
