package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vslusny/pitchcoach/internal/core"
)

var (
	flagSimPitches int
	flagSimGame    string
	flagSimRecord  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Generate random pitches and feed them through the pipeline",
	Long: `Drives the pipeline with a seeded random pitch stream so the games
and statistics can be exercised without a camera feed.

Examples:
  pitchcoach simulate --pitches 50
  pitchcoach simulate --game around_world --seed 7`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimPitches, "pitches", 30, "Number of pitches to generate")
	simulateCmd.Flags().StringVar(&flagSimGame, "game", "", "Practice game to play (see 'pitchcoach list')")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Archive the session's pitches")
}

func runSimulate(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	run := newPipeline(cfg, flagSimGame, flagSimRecord)
	defer run.close()

	rng := newRand()
	at := run.startedAt
	for range flagSimPitches {
		ev := core.PitchEvent{
			Speed:  40 + rng.Float64()*25,
			Strike: rng.Float64() < 0.6,
			At:     at,
		}
		// Roughly one pitch in ten defeats zone classification.
		if rng.Intn(10) != 0 {
			ev.Zone = core.Zone{Row: rng.Intn(3), Col: rng.Intn(3)}
			ev.Zoned = true
		}
		run.dispatcher.HandlePitch(ev)
		at = at.Add(time.Duration(4+rng.Intn(8)) * time.Second)
	}

	run.printSummary(cfg)
}
