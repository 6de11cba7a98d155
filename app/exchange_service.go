package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/core"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/exchange"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/roster"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/internal"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/ports"
)

// ExchangeService orchestrates one gift exchange: load the roster, draw
// assignments, render every message, then deliver.
type ExchangeService struct {
	source      ports.RosterSource
	engine      *exchange.Engine
	renderer    ports.Renderer
	notifier    ports.Notifier
	concurrency int
	logger      *internal.Logger
}

// NewExchangeService creates an exchange service. Concurrency bounds the
// delivery fan-out and is clamped to at least 1.
func NewExchangeService(source ports.RosterSource, engine *exchange.Engine, renderer ports.Renderer, notifier ports.Notifier, concurrency int) *ExchangeService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &ExchangeService{
		source:      source,
		engine:      engine,
		renderer:    renderer,
		notifier:    notifier,
		concurrency: concurrency,
		logger:      internal.NewDefaultLogger(),
	}
}

// DrawResult carries the outcome of a roster load plus assignment draw.
type DrawResult struct {
	Directory   roster.Directory
	Assignments exchange.AssignmentSet
	Attempts    int
	DrawnAt     core.Timestamp
}

// Draw loads the roster and generates a complete assignment set.
func (s *ExchangeService) Draw(ctx context.Context) (*DrawResult, error) {
	records, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	dir := roster.NewDirectory(records)
	set, attempts, err := s.engine.GenerateWithAttempts(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to generate assignments: %w", err)
	}
	s.logger.Debug("Drew %d assignments in %d attempt(s)", set.Len(), attempts)

	return &DrawResult{
		Directory:   dir,
		Assignments: set,
		Attempts:    attempts,
		DrawnAt:     core.Now(),
	}, nil
}

// Notification is a rendered message addressed to the giver of one
// assignment.
type Notification struct {
	Assignment exchange.Assignment
	To         ports.Recipient
	Message    ports.Message
}

// RenderAll renders a notification for every assignment. It fails on the
// first render error, before anything is delivered, so a broken template
// never produces a half-notified exchange.
func (s *ExchangeService) RenderAll(set exchange.AssignmentSet) ([]Notification, error) {
	notifications := make([]Notification, 0, set.Len())
	for _, a := range set.Assignments() {
		msg, err := s.renderer.Render(a.Giver, a.Receiver)
		if err != nil {
			return nil, fmt.Errorf("failed to render message for %s: %w", a.Giver.Name, err)
		}
		notifications = append(notifications, Notification{
			Assignment: a,
			To:         ports.Recipient{Name: a.Giver.Name, Email: a.Giver.Email},
			Message:    msg,
		})
	}
	return notifications, nil
}

// DeliveryResult reports how many notifications went out and how long the
// fan-out took.
type DeliveryResult struct {
	Delivered int
	RuntimeMs int64
}

// Deliver fans notifications out to the notifier with bounded concurrency.
// The first failure cancels the sends that have not started yet; the result
// still reports how many completed.
func (s *ExchangeService) Deliver(ctx context.Context, notifications []Notification) (*DeliveryResult, error) {
	start := time.Now()
	s.logger.Info("Delivering %d notifications with %d workers", len(notifications), s.concurrency)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	// Each worker writes only its own slot, so no lock is needed.
	sent := make([]bool, len(notifications))
	for i, n := range notifications {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := s.notifier.Send(gctx, n.To, n.Message); err != nil {
				return err
			}
			sent[i] = true
			return nil
		})
	}

	waitErr := g.Wait()

	delivered := 0
	for _, ok := range sent {
		if ok {
			delivered++
		}
	}
	result := &DeliveryResult{
		Delivered: delivered,
		RuntimeMs: time.Since(start).Milliseconds(),
	}
	if waitErr != nil {
		return result, fmt.Errorf("delivery stopped after %d of %d messages: %w", delivered, len(notifications), waitErr)
	}
	s.logger.Debug("Delivery finished: %d message(s) in %dms", delivered, result.RuntimeMs)
	return result, nil
}

// Run executes the full pipeline in order: draw, render everything, deliver.
func (s *ExchangeService) Run(ctx context.Context) (*ExchangeResult, error) {
	draw, err := s.Draw(ctx)
	if err != nil {
		return nil, err
	}

	notifications, err := s.RenderAll(draw.Assignments)
	if err != nil {
		return nil, err
	}

	delivery, err := s.Deliver(ctx, notifications)
	if err != nil {
		return nil, err
	}

	return &ExchangeResult{
		Participants: draw.Directory.Len(),
		Assignments:  draw.Assignments,
		Attempts:     draw.Attempts,
		Delivered:    delivery.Delivered,
		RuntimeMs:    delivery.RuntimeMs,
	}, nil
}

// ExchangeResult summarizes a full draw-and-deliver run.
type ExchangeResult struct {
	Participants int
	Assignments  exchange.AssignmentSet
	Attempts     int
	Delivered    int
	RuntimeMs    int64
}
