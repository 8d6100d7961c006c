package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vslusny/pitchcoach/internal/archive"
)

var flagSessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List archived practice sessions",
	Long: `Shows the most recent sessions recorded in the pitch archive.

Examples:
  pitchcoach sessions
  pitchcoach sessions --limit 5`,
	Run: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagSessionsLimit, "limit", 20, "Maximum sessions to show")
}

func runSessions(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := archive.Open(cfg.Archive.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session archive: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(flagSessionsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions archived yet.")
		fmt.Println()
		fmt.Println("Run 'pitchcoach replay <file> --record' to archive one.")
		return
	}

	fmt.Printf("  %-36s  %-16s  %-7s  %-13s  %s\n", "Session", "Started", "Pitches", "Strikes/Balls", "Fastest")
	for _, s := range sessions {
		fmt.Printf("  %-36s  %-16s  %-7d  %3d/%-9d  %.1f mph\n",
			s.ID,
			s.StartedAt.Format("2006-01-02 15:04"),
			s.PitchCount,
			s.Strikes, s.Balls,
			s.Fastest,
		)
	}
}
