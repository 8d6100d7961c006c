// pitchcoach is the non-visual core of a pitch-practice coaching tool.
//
// Usage:
//
//	pitchcoach list              - List available practice games
//	pitchcoach scores <game>     - Show the ledger for a game
//	pitchcoach replay <file>     - Feed a JSONL pitch log through the pipeline
//	pitchcoach simulate          - Drive the pipeline with generated pitches
//	pitchcoach sessions          - List archived sessions
//
// Global flags:
//
//	--config <path>  - Config file (default: search order, see internal/config)
//	--ledger <path>  - Score ledger path (overrides config)
//	--db <path>      - Session archive path (overrides config)
//	--seed <value>   - RNG seed for reproducible games (0 = time-based)
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vslusny/pitchcoach/internal/config"

	// Import games to register them
	_ "github.com/vslusny/pitchcoach/internal/engine/aroundworld"
	_ "github.com/vslusny/pitchcoach/internal/engine/speed"
	_ "github.com/vslusny/pitchcoach/internal/engine/targets"
	_ "github.com/vslusny/pitchcoach/internal/engine/tictactoe"
)

var (
	// Global flags
	flagConfig string
	flagLedger string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pitchcoach",
	Short: "Pitch Coach - track pitches and play practice games",
	Long: `Pitch Coach is the scoring and game core of a pitch-practice tool.
It consumes pitch events, keeps rolling session statistics, runs four
practice games, and persists scores to a durable ledger.

Available commands:
  list      - Show all available practice games
  scores    - View the score ledger for a game
  replay    - Feed a recorded pitch log through the pipeline
  simulate  - Generate random pitches and feed them through
  sessions  - View archived practice sessions

Examples:
  pitchcoach list
  pitchcoach replay bullpen.jsonl --game target_scoring
  pitchcoach simulate --game around_world --pitches 50 --seed 7
  pitchcoach scores speed_challenge`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLedger, "ledger", "", "Path to the score ledger (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the session archive (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// loadConfig loads the config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLedger != "" {
		cfg.Ledger.Path = flagLedger
	}
	if flagDBPath != "" {
		cfg.Archive.Path = flagDBPath
	}
	if lvl, err := log.ParseLevel(cfg.Logging.Level); err == nil {
		log.SetLevel(lvl)
	}
	return cfg, nil
}

// newRand builds the RNG injected into engines from the --seed flag.
func newRand() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
