// ticketrush is a two-player cooperative terminal game: read the ticket,
// fetch the right knowledge blocks, and submit the answer before one of
// the deadlines fires.
//
// Usage:
//
//	ticketrush play          - Start a local co-op session
//	ticketrush serve         - Start SSH server for remote play
//	ticketrush scores        - Show high scores and recent sessions
//	ticketrush catalog       - Print the content catalog
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.ticketrush/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/ticket-rush/internal/games/ticketrush"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ticketrush",
	Short: "Ticket Rush - co-op ticket triage in your terminal",
	Long: `Ticket Rush is a two-player cooperative terminal game. One player
reads tickets at the board, the other collects typed knowledge blocks
from the shelves and submits the answer at the compiler desk.

Available commands:
  play     - Start a local co-op session
  serve    - Start SSH server for remote play
  scores   - View high scores and recent sessions
  catalog  - Print the content catalog

Examples:
  ticketrush play
  ticketrush play --difficulty hard
  ticketrush serve --ssh :2222
  ticketrush scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ticketrush/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(catalogCmd)
}
