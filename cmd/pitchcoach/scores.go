package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vslusny/pitchcoach/internal/ledger"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the score ledger for a game",
	Long: `Display the best value, play count, and recent score history for
the specified game.

Examples:
  pitchcoach scores target_scoring
  pitchcoach scores around_world`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !ledger.Known(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pitchcoach list' to see available games.")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store := ledger.Open(cfg.Ledger.Path)

	fmt.Printf("Scores - %s\n", gameID)
	fmt.Println()

	total := store.TotalGames(gameID)
	if total == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	best := store.HighScore(gameID)
	if gameID == ledger.GameAroundWorld {
		fmt.Printf("Best (fewest pitches): %d\n", best)
	} else {
		fmt.Printf("Best: %d\n", best)
	}
	fmt.Printf("Games played: %d\n", total)
	fmt.Println()

	history := store.History(gameID)
	if len(history) > 10 {
		history = history[len(history)-10:]
	}

	fmt.Printf("  %-10s  %s\n", "Score", "Date")
	fmt.Printf("  %-10s  %s\n", "-----", "----")
	for _, entry := range history {
		fmt.Printf("  %-10d  %s\n", entry.Score, entry.At.Format("2006-01-02 15:04"))
	}
}
