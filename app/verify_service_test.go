package app

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/adapters/rng"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/exchange"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/internal/testkit"
)

func TestVerifyCollectsAttemptStats(t *testing.T) {
	// First draw burns one identity rejection, later draws accept
	// immediately: attempt samples are [2, 1, 1].
	engine := exchange.NewEngine(&testkit.ScriptedPermutations{
		Perms: [][]int{{0, 1, 2}, {1, 2, 0}},
	})
	svc := NewVerifyService(engine)

	res, err := svc.Verify(context.Background(), VerifyRequest{
		Directory: testkit.DummyDirectory(),
		Trials:    3,
	})
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if !res.Clean() {
		t.Errorf("result not clean: %+v", res)
	}
	if res.Trials != 3 || res.Participants != 3 {
		t.Errorf("trials/participants = %d/%d, want 3/3", res.Trials, res.Participants)
	}
	if math.Abs(res.MeanAttempts-4.0/3.0) > 1e-9 {
		t.Errorf("mean attempts = %v, want 4/3", res.MeanAttempts)
	}
	if math.Abs(res.P95Attempts-1.5) > 1e-9 {
		t.Errorf("p95 attempts = %v, want 1.5", res.P95Attempts)
	}
	if res.MaxAttempts != 2 {
		t.Errorf("max attempts = %d, want 2", res.MaxAttempts)
	}
}

func TestVerifyCountsExhaustedDraws(t *testing.T) {
	// A source stuck on the identity permutation can never produce a valid
	// draw, so every trial exhausts the budget.
	engine := exchange.NewEngine(
		&testkit.ScriptedPermutations{Perms: [][]int{{0, 1, 2}}},
		exchange.WithMaxAttempts(3),
	)
	svc := NewVerifyService(engine)

	res, err := svc.Verify(context.Background(), VerifyRequest{
		Directory: testkit.DummyDirectory(),
		Trials:    5,
	})
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if res.Exhausted != 5 {
		t.Errorf("exhausted = %d, want 5", res.Exhausted)
	}
	if res.Clean() {
		t.Error("result reported clean despite exhausted draws")
	}
	if res.MeanAttempts != 0 || res.MaxAttempts != 0 {
		t.Errorf("stats = mean %v max %d, want zeros with no successful draws", res.MeanAttempts, res.MaxAttempts)
	}
}

func TestVerifyRejectsBadTrialCount(t *testing.T) {
	svc := NewVerifyService(exchange.NewEngine(rng.New()))
	if _, err := svc.Verify(context.Background(), VerifyRequest{
		Directory: testkit.DummyDirectory(),
		Trials:    0,
	}); err == nil {
		t.Fatal("Verify() accepted zero trials")
	}
}

func TestVerifyRejectsTinyRoster(t *testing.T) {
	svc := NewVerifyService(exchange.NewEngine(rng.New()))
	_, err := svc.Verify(context.Background(), VerifyRequest{
		Directory: testkit.DummyDirectory(),
		Trials:    1,
	})
	if err != nil {
		t.Fatalf("Verify() over a valid roster errored: %v", err)
	}

	gen := testkit.NewRosterGenerator(testkit.RosterGeneratorConfig{Count: 1, Seed: 1})
	_, err = svc.Verify(context.Background(), VerifyRequest{
		Directory: gen.GenerateDirectory(),
		Trials:    1,
	})
	if !errors.Is(err, exchange.ErrInsufficientParticipants) {
		t.Fatalf("Verify() error = %v, want ErrInsufficientParticipants", err)
	}
}

func TestVerifyHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewVerifyService(exchange.NewEngine(rng.New()))
	_, err := svc.Verify(ctx, VerifyRequest{
		Directory: testkit.DummyDirectory(),
		Trials:    10,
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Verify() error = %v, want context.Canceled", err)
	}
}

func TestVerifyOverGeneratedRoster(t *testing.T) {
	gen := testkit.NewRosterGenerator(testkit.RosterGeneratorConfig{Count: 25, Seed: 7})
	svc := NewVerifyService(exchange.NewEngine(rng.NewSeeded(7)))

	res, err := svc.Verify(context.Background(), VerifyRequest{
		Directory: gen.GenerateDirectory(),
		Trials:    50,
	})
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !res.Clean() {
		t.Errorf("draws over generated roster misbehaved: %+v", res)
	}
	if res.MeanAttempts < 1 {
		t.Errorf("mean attempts = %v, want >= 1", res.MeanAttempts)
	}
	if res.MaxAttempts < 1 || res.MaxAttempts > exchange.DefaultMaxAttempts {
		t.Errorf("max attempts = %d, outside sane range", res.MaxAttempts)
	}
}

func TestValidDrawFlagsSizeMismatch(t *testing.T) {
	if validDraw(testkit.DummyDirectory(), exchange.AssignmentSet{}) {
		t.Error("empty assignment set accepted for a populated roster")
	}
}
