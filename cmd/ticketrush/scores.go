package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ticket-rush/internal/platform/tui"
	"github.com/vovakirdan/ticket-rush/internal/storage"
)

const gameID = "ticketrush"

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent sessions",
	Long: `Display the top high scores and the most recent session outcomes.

Examples:
  ticketrush scores
  ticketrush scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Ticket Rush")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ticketrush play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	sessions, err := store.RecentSessions(gameID, 5)
	if err == nil && len(sessions) > 0 {
		fmt.Println()
		fmt.Println("Recent sessions:")
		fmt.Printf("  %-16s  %-7s  %-7s  %-7s  %-6s  %s\n",
			"Date", "Score", "Solved", "Failed", "Combo", "Ended By")
		for _, s := range sessions {
			fmt.Printf("  %-16s  %-7d  %-7d  %-7d  x%-5d  %s\n",
				s.CreatedAt.Format("2006-01-02 15:04"),
				s.FinalScore, s.TicketsCorrect, s.TicketsFailed, s.ComboPeak, s.EndReason)
		}
	}

	if high, err := store.HighScore(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", high)
	}
}
