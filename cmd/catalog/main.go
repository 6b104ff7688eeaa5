package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	fixturesPath string
	envFile      string
)

// rootCmd is the catalog entry point
var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the product categories catalog",
	Long: `Browse a static product catalog joined with categories and owners.

Available subcommands:
  serve - Serve the HTML catalog and the JSON API
  list  - Print the filtered catalog as a table`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&fixturesPath, "fixtures", "", "YAML fixture file (overrides FIXTURES_PATH)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
