package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/core"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/exchange"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/roster"
)

// VerifyService audits the assignment engine by replaying many draws over
// one roster and independently checking every outcome.
type VerifyService struct {
	engine *exchange.Engine
}

// NewVerifyService creates a verify service around the engine under audit.
func NewVerifyService(engine *exchange.Engine) *VerifyService {
	return &VerifyService{engine: engine}
}

// VerifyRequest defines inputs for an engine audit.
type VerifyRequest struct {
	Directory roster.Directory
	Trials    int
}

// VerifyResult summarizes an audit: how many draws misbehaved and how the
// attempt counts of the successful draws were distributed.
type VerifyResult struct {
	Trials       int
	Participants int
	Exhausted    int
	Invalid      int
	MeanAttempts float64
	P95Attempts  float64
	MaxAttempts  int
	RuntimeMs    int64
}

// Clean reports whether every trial produced a valid draw.
func (r *VerifyResult) Clean() bool {
	return r.Exhausted == 0 && r.Invalid == 0
}

// Verify runs the requested number of trial draws. Draws that exhaust the
// attempt budget or fail the derangement check are counted, not fatal; a
// roster the engine rejects outright is.
func (s *VerifyService) Verify(ctx context.Context, req VerifyRequest) (*VerifyResult, error) {
	if req.Trials < 1 {
		return nil, fmt.Errorf("trials must be positive, got %d", req.Trials)
	}

	start := time.Now()
	attempts := make([]float64, 0, req.Trials)
	result := &VerifyResult{
		Trials:       req.Trials,
		Participants: req.Directory.Len(),
	}

	for trial := 1; trial <= req.Trials; trial++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		set, n, err := s.engine.GenerateWithAttempts(req.Directory)
		if err != nil {
			if errors.Is(err, exchange.ErrDerangementUnattainable) {
				result.Exhausted++
				continue
			}
			return nil, fmt.Errorf("trial %d failed: %w", trial, err)
		}

		if !validDraw(req.Directory, set) {
			result.Invalid++
			continue
		}
		attempts = append(attempts, float64(n))
	}

	if len(attempts) > 0 {
		mean, err := stats.Mean(attempts)
		if err != nil {
			return nil, err
		}
		p95, err := stats.Percentile(attempts, 95)
		if err != nil {
			return nil, err
		}
		max, err := stats.Max(attempts)
		if err != nil {
			return nil, err
		}
		result.MeanAttempts = mean
		result.P95Attempts = p95
		result.MaxAttempts = int(max)
	}

	result.RuntimeMs = time.Since(start).Milliseconds()
	return result, nil
}

// validDraw checks that the set is a complete derangement of the directory:
// everyone gives exactly once, receives exactly once, never to themselves.
func validDraw(dir roster.Directory, set exchange.AssignmentSet) bool {
	if set.Len() != dir.Len() {
		return false
	}
	given := make(map[core.ParticipantID]int, set.Len())
	received := make(map[core.ParticipantID]int, set.Len())
	for _, a := range set.Assignments() {
		if a.Giver.ID == a.Receiver.ID {
			return false
		}
		given[a.Giver.ID]++
		received[a.Receiver.ID]++
	}
	for i := 0; i < dir.Len(); i++ {
		id := dir.At(i).ID
		if given[id] != 1 || received[id] != 1 {
			return false
		}
	}
	return true
}
