package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ticket-rush/internal/catalog"
	"github.com/vovakirdan/ticket-rush/internal/core"
	"github.com/vovakirdan/ticket-rush/internal/games/ticketrush"
	"github.com/vovakirdan/ticket-rush/internal/platform/tui"
	"github.com/vovakirdan/ticket-rush/internal/registry"
	"github.com/vovakirdan/ticket-rush/internal/storage"
)

var (
	flagConfig     string
	flagCatalog    string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a local co-op session",
	Long: `Start a two-player session on one keyboard.

Controls:
  Player 1 (Reader):    WASD move, E interact
  Player 2 (Compiler):  Arrows move, Enter interact, 1-4 answer
  Space/R               Start or restart
  C                     Trigger a chaos event
  Q/Ctrl+C              Quit

Difficulty options:
  easy   - Longer timers, slower ticket clocks
  normal - Default timers
  hard   - Shorter timers, faster ticket clocks
  fixed  - Config values as-is, no preset applied

Examples:
  ticketrush play
  ticketrush play --difficulty hard
  ticketrush play --config ./my-rules.yaml --catalog ./my-tickets.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Path to custom content catalog YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Reject a broken custom catalog up front instead of falling back
	// silently mid-game.
	if flagCatalog != "" {
		if _, err := catalog.Load(flagCatalog); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid catalog %s: %v\n", flagCatalog, err)
			os.Exit(1)
		}
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	ticketrush.SetConfigPath(flagConfig)
	ticketrush.SetCatalogPath(flagCatalog)
	ticketrush.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create("ticketrush")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
