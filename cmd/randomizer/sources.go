package main

import (
	"github.com/spf13/cobra"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/adapters/postgres"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/adapters/render"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/adapters/tabular"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/internal/config"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/internal/errors"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/internal/testkit"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/ports"
)

// sourceFlags selects where participant records come from. Draw and preview
// share these flags.
type sourceFlags struct {
	csvPath  string
	xlsxPath string
	fromDB   bool
	dummy    bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.csvPath, "csv", "", "Path to a cleaned CSV file with participants")
	cmd.Flags().StringVar(&f.xlsxPath, "xlsx", "", "Path to an Excel export with participants")
	cmd.Flags().BoolVar(&f.fromDB, "db", false, "Load participants from DATABASE_URL")
	cmd.Flags().BoolVar(&f.dummy, "dummy", false, "Use the built-in dummy roster")
}

// open picks the selected roster source. The description is empty for the
// dummy roster and names the origin otherwise; cleanup closes whatever the
// source holds open and is safe to call unconditionally.
func (f *sourceFlags) open(cfg *config.Config) (source ports.RosterSource, description string, cleanup func(), err error) {
	noop := func() {}

	selected := 0
	for _, on := range []bool{f.csvPath != "", f.xlsxPath != "", f.fromDB, f.dummy} {
		if on {
			selected++
		}
	}
	if selected > 1 {
		return nil, "", noop, errors.ConfigInvalid("choose exactly one roster source: --csv, --xlsx, --db or --dummy")
	}

	switch {
	case f.csvPath != "":
		return tabular.NewRosterReader(f.csvPath, tabular.DefaultFieldMapping()), f.csvPath, noop, nil
	case f.xlsxPath != "":
		return tabular.NewRosterReader(f.xlsxPath, tabular.DefaultFieldMapping()), f.xlsxPath, noop, nil
	case f.fromDB:
		if err := cfg.ValidateForDatabase(); err != nil {
			return nil, "", noop, err
		}
		db, err := postgres.Connect(cfg.Database.URL)
		if err != nil {
			return nil, "", noop, err
		}
		return postgres.NewRosterSource(db), "database", func() { _ = db.Close() }, nil
	default:
		return &testkit.StaticRosterSource{Records: testkit.DummyRoster()}, "", noop, nil
	}
}

// buildRenderer returns the built-in email renderer, or one driven by a
// custom Markdown template when a path is given.
func buildRenderer(cfg *config.Config, templatePath string) (ports.Renderer, error) {
	msgCfg := render.Config{
		Subject:   cfg.Message.Subject,
		Budget:    cfg.Message.Budget,
		EventName: cfg.Message.EventName,
	}
	if templatePath != "" {
		return render.NewMarkdownRenderer(templatePath, msgCfg)
	}
	return render.NewEmailRenderer(msgCfg)
}
