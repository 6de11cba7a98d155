package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/adapters/console"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/adapters/rng"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/app"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/exchange"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/internal/config"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/ui"
)

var (
	previewSources  sourceFlags
	previewSeed     int64
	previewAddr     string
	previewTemplate string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Draw assignments and serve the rendered emails locally",
	Long: `Preview performs a full draw and renders every email, then serves the
results on a local web server instead of sending anything. Use it to check
templates and wording before the real draw.`,
	RunE: runPreview,
}

func init() {
	previewSources.register(previewCmd)
	previewCmd.Flags().Int64Var(&previewSeed, "seed", 0, "Seed for the permutation source (0 = time-seeded)")
	previewCmd.Flags().StringVar(&previewAddr, "addr", "", "Listen address (default PREVIEW_ADDR)")
	previewCmd.Flags().StringVar(&previewTemplate, "template", "", "Path to a custom Markdown message template")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	source, description, cleanup, err := previewSources.open(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	renderer, err := buildRenderer(cfg, previewTemplate)
	if err != nil {
		return err
	}

	// Nothing is delivered from preview, the notifier is never invoked.
	engine := exchange.NewEngine(rng.NewSeeded(previewSeed))
	svc := app.NewExchangeService(source, engine, renderer, console.NewNotifier(io.Discard), 1)

	res, err := svc.Draw(cmd.Context())
	if err != nil {
		return err
	}

	if description == "" {
		fmt.Printf("Using dummy test data with %d participants\n", res.Directory.Len())
	} else {
		fmt.Printf("Loaded %d participants from %s\n", res.Directory.Len(), description)
	}

	notifications, err := svc.RenderAll(res.Assignments)
	if err != nil {
		return err
	}

	addr := cfg.Preview.Addr
	if previewAddr != "" {
		addr = previewAddr
	}

	a, err := ui.NewApp(ui.Config{Addr: addr}, ui.Preview{
		DrawnAt:       res.DrawnAt,
		Notifications: notifications,
	})
	if err != nil {
		return err
	}
	return a.Start()
}
