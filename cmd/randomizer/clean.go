package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/adapters/tabular"
)

var cleanOutput string

var cleanCmd = &cobra.Command{
	Use:   "clean [input-csv]",
	Short: "Filter a raw signup CSV down to confirmed participants",
	Long: `Clean takes the raw signup form export and keeps only the rows for the
section whose members confirmed they will attend and participate, projected
down to the columns the draw needs.`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "2-2_cleaned.csv", "Output CSV path")
}

func runClean(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	cleaner := tabular.NewCleaner(tabular.DefaultCleanConfig())
	statsResult, err := cleaner.Clean(inputPath, cleanOutput)
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d rows, matched %d rows. Output: %s\n", statsResult.Processed, statsResult.Matched, cleanOutput)
	return nil
}
