package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/adapters/brevo"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/adapters/console"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/adapters/rng"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/app"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/exchange"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/internal/config"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/ports"
)

var (
	drawSources     sourceFlags
	drawDryRun      bool
	drawSeed        int64
	drawConcurrency int
	drawTemplate    string
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw assignments and email every giver their recipient",
	Long: `Draw loads the roster, assigns everyone a recipient at random, and sends
each giver one email naming who they picked.

Without a roster flag the built-in dummy roster is used. With --dry-run the
emails are printed to the terminal instead of going through Brevo.`,
	RunE: runDraw,
}

func init() {
	drawSources.register(drawCmd)
	drawCmd.Flags().BoolVar(&drawDryRun, "dry-run", false, "Print emails instead of sending them")
	drawCmd.Flags().Int64Var(&drawSeed, "seed", 0, "Seed for the permutation source (0 = time-seeded)")
	drawCmd.Flags().IntVar(&drawConcurrency, "concurrency", 0, "Delivery workers (0 = SEND_CONCURRENCY)")
	drawCmd.Flags().StringVar(&drawTemplate, "template", "", "Path to a custom Markdown message template")
}

func runDraw(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	source, description, cleanup, err := drawSources.open(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	renderer, err := buildRenderer(cfg, drawTemplate)
	if err != nil {
		return err
	}

	notifier, err := buildNotifier(cfg)
	if err != nil {
		return err
	}

	concurrency := cfg.Delivery.Concurrency
	if drawConcurrency > 0 {
		concurrency = drawConcurrency
	}

	engine := exchange.NewEngine(rng.NewSeeded(drawSeed))
	svc := app.NewExchangeService(source, engine, renderer, notifier, concurrency)

	ctx := cmd.Context()
	res, err := svc.Draw(ctx)
	if err != nil {
		return err
	}

	if description == "" {
		fmt.Printf("Using dummy test data with %d participants\n", res.Directory.Len())
	} else {
		fmt.Printf("Loaded %d participants from %s\n", res.Directory.Len(), description)
	}

	fmt.Println("\nAssignments:")
	for _, a := range res.Assignments.Assignments() {
		fmt.Printf("  %s -> %s\n", a.Giver.Name, a.Receiver.Name)
	}
	fmt.Println()

	notifications, err := svc.RenderAll(res.Assignments)
	if err != nil {
		return err
	}
	if _, err := svc.Deliver(ctx, notifications); err != nil {
		return err
	}

	fmt.Println("Done!")
	return nil
}

// buildNotifier is the send/print switch: dry runs never need a mailer key.
func buildNotifier(cfg *config.Config) (ports.Notifier, error) {
	if drawDryRun {
		return console.NewNotifier(os.Stdout), nil
	}
	if err := cfg.ValidateForDelivery(); err != nil {
		return nil, err
	}
	return brevo.NewMailer(cfg.Mailer.APIKey, cfg.Mailer.SenderEmail, cfg.Mailer.SenderName), nil
}
