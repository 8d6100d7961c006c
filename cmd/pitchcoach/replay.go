package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vslusny/pitchcoach/internal/archive"
	"github.com/vslusny/pitchcoach/internal/config"
	"github.com/vslusny/pitchcoach/internal/core"
	"github.com/vslusny/pitchcoach/internal/dispatch"
	"github.com/vslusny/pitchcoach/internal/engine"
	"github.com/vslusny/pitchcoach/internal/engine/aroundworld"
	"github.com/vslusny/pitchcoach/internal/engine/speed"
	"github.com/vslusny/pitchcoach/internal/engine/targets"
	"github.com/vslusny/pitchcoach/internal/engine/tictactoe"
	"github.com/vslusny/pitchcoach/internal/ledger"
	"github.com/vslusny/pitchcoach/internal/session"
)

var (
	flagReplayGame   string
	flagReplayRecord bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Feed a recorded pitch log through the pipeline",
	Long: `Reads a JSONL pitch log (one pitch event per line, as emitted by the
pitch pipeline) and routes every event through the session tracker and,
optionally, a practice game.

Examples:
  pitchcoach replay bullpen.jsonl
  pitchcoach replay bullpen.jsonl --game tic_tac_toe
  pitchcoach replay bullpen.jsonl --game speed_challenge --record`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayGame, "game", "", "Practice game to play (see 'pitchcoach list')")
	replayCmd.Flags().BoolVar(&flagReplayRecord, "record", false, "Archive the session's pitches")
}

func runReplay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	file, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening pitch log: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	run := newPipeline(cfg, flagReplayGame, flagReplayRecord)
	defer run.close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ev core.PitchEvent
		if err := json.Unmarshal(line, &ev); err != nil {
			fmt.Fprintf(os.Stderr, "Skipping line %d: %v\n", lineNo, err)
			continue
		}
		run.dispatcher.HandlePitch(ev)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading pitch log: %v\n", err)
		os.Exit(1)
	}

	run.printSummary(cfg)
}

// pipeline wires the tracker, ledger, optional archive, and optional
// engine the way the coaching app's dispatcher does.
type pipeline struct {
	tracker    *session.Tracker
	dispatcher *dispatch.Dispatcher
	store      *ledger.Store
	eng        engine.Engine

	archiveStore *archive.Store
	sessionID    string
	startedAt    time.Time
}

func newPipeline(cfg config.Config, gameID string, record bool) *pipeline {
	p := &pipeline{
		tracker:   session.NewTracker(),
		startedAt: time.Now(),
	}
	p.dispatcher = dispatch.New(p.tracker)
	p.store = ledger.Open(cfg.Ledger.Path)

	if gameID != "" {
		if !engine.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'pitchcoach list' to see available games.")
			os.Exit(1)
		}
		eng, err := engine.Create(gameID, engine.Deps{
			Saver: p.store,
			Rand:  newRand(),
			Now:   time.Now,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
		if sg, ok := eng.(*speed.Game); ok {
			sg.SetDifficulty(speed.ParseDifficulty(cfg.Speed.Difficulty))
		}
		p.eng = eng
		p.dispatcher.SetEngine(eng)
	}

	if record && cfg.Archive.Enabled {
		store, err := archive.Open(cfg.Archive.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: session archive unavailable: %v\n", err)
		} else {
			id, err := store.StartSession(p.startedAt)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not start archive session: %v\n", err)
				store.Close()
			} else {
				p.archiveStore = store
				p.sessionID = id
				p.dispatcher.SetRecorder(store.Recorder(id))
			}
		}
	}

	return p
}

func (p *pipeline) close() {
	if p.archiveStore == nil {
		return
	}
	strikes, balls, _ := p.tracker.StrikeBallRatio()
	err := p.archiveStore.FinishSession(p.sessionID, archive.Summary{
		EndedAt:    time.Now(),
		PitchCount: p.tracker.Count(),
		Strikes:    strikes,
		Balls:      balls,
		Fastest:    p.tracker.FastestPitch(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not finish archive session: %v\n", err)
	}
	p.archiveStore.Close()
}

func (p *pipeline) printSummary(cfg config.Config) {
	strikes, balls, fraction := p.tracker.StrikeBallRatio()

	fmt.Println("Session summary")
	fmt.Println()
	fmt.Printf("  Pitches:       %d\n", p.tracker.Count())
	fmt.Printf("  Strikes/Balls: %d/%d (%.0f%% strikes)\n", strikes, balls, fraction*100)
	fmt.Printf("  Fastest:       %.1f mph\n", p.tracker.FastestPitch())

	window := cfg.Session.AccuracyWindow
	if window <= 0 {
		window = session.DefaultAccuracyWindow
	}
	if accuracy := p.tracker.StrikeAccuracyHistory(window); len(accuracy) > 0 {
		fmt.Printf("  Accuracy (last %d window): %.0f%%\n",
			window, accuracy[len(accuracy)-1].Value*100)
	}

	if p.eng == nil {
		return
	}

	fmt.Println()
	fmt.Printf("Game: %s\n", p.eng.Name())
	switch g := p.eng.(type) {
	case *tictactoe.Game:
		snap := g.Snapshot()
		fmt.Printf("  Wins %d, losses %d, ties %d\n", snap.Wins, snap.Losses, snap.Ties)
	case *targets.Game:
		snap := g.Snapshot()
		fmt.Printf("  Score %d (streak %d)\n", snap.Score, snap.Streak)
	case *aroundworld.Game:
		snap := g.Snapshot()
		fmt.Printf("  Completions %d, current run at zone %d/9\n", snap.Completions, snap.Step)
	case *speed.Game:
		snap := g.Snapshot()
		fmt.Printf("  Targets hit: %d (difficulty %s)\n", snap.Hits, snap.Difficulty)
	}
	fmt.Printf("  Ledger best: %d over %d games\n",
		p.store.HighScore(p.eng.Name()), p.store.TotalGames(p.eng.Name()))

	if scores := p.store.SessionScores(p.eng.Name(), p.startedAt); len(scores) > 0 {
		fmt.Printf("  Scores this session: %d\n", len(scores))
	}
}
