package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ticket-rush/internal/catalog"
)

var flagCatalogPath string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the content catalog",
	Long: `Print the block kinds, ticket templates, and chaos events the game
will use. Helpful for checking a custom catalog before playing with it.

Examples:
  ticketrush catalog
  ticketrush catalog --catalog ./my-tickets.yaml`,
	Args: cobra.NoArgs,
	Run:  runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&flagCatalogPath, "catalog", "", "Path to custom content catalog YAML")
}

func runCatalog(cmd *cobra.Command, args []string) {
	c, err := catalog.Load(flagCatalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Blocks (%d):\n", len(c.Blocks))
	for _, b := range c.Blocks {
		fmt.Printf("  %-10s  [%s]  %s\n", b.Kind, b.Label, b.Color)
	}

	fmt.Printf("\nTickets (%d):\n", len(c.Tickets))
	for _, t := range c.Tickets {
		kinds := make([]string, len(t.Blocks))
		for i, k := range t.Blocks {
			kinds[i] = string(k)
		}
		fmt.Printf("  %-12s  %3.0fs  needs %-28s  %s\n",
			t.ID, t.TimeSecs, strings.Join(kinds, ", "), t.Text)
	}

	fmt.Printf("\nChaos events (%d):\n", len(c.Chaos))
	for _, ch := range c.Chaos {
		fmt.Printf("  %-8s  %3.0fs  %s\n", ch.ID, ch.DurationSecs, ch.Name)
	}
}
