package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "randomizer",
	Short: "Secret Santa randomizer for the BSCS 2-1N gift exchange",
	Long: `randomizer draws Secret Santa assignments for a gift exchange and
notifies every giver who they picked.

Participants come from a cleaned signup CSV, an Excel export, a postgres
database, or the built-in dummy roster. Every participant gives exactly one
gift and receives exactly one gift, and nobody is ever assigned to
themselves. Notifications go out through Brevo, or to the terminal with
--dry-run.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load environment variables from .env file
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
	},
}

func init() {
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
