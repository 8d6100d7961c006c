package tictactoe

import (
	"testing"
	"time"

	"github.com/vslusny/pitchcoach/internal/core"
	"github.com/vslusny/pitchcoach/internal/engine"
)

type savedScore struct {
	game  string
	score int
}

type fakeSaver struct {
	calls []savedScore
}

func (f *fakeSaver) SaveScore(game string, score int, at time.Time) {
	f.calls = append(f.calls, savedScore{game: game, score: score})
}

// stubRand makes the AI always pick the first empty cell in row-major
// order.
type stubRand struct{}

func (stubRand) Intn(n int) int   { return 0 }
func (stubRand) Float64() float64 { return 0 }

func testDeps(saver *fakeSaver) engine.Deps {
	return engine.Deps{
		Saver: saver,
		Rand:  stubRand{},
		Now:   func() time.Time { return time.Unix(1700000000, 0) },
	}
}

func strikeAt(row, col int) core.PitchEvent {
	return core.PitchEvent{Strike: true, Zone: core.Zone{Row: row, Col: col}, Zoned: true}
}

func TestPlayerWinPersistsWinCount(t *testing.T) {
	saver := &fakeSaver{}
	g := New(testDeps(saver))

	// Player takes the main diagonal; the AI (first-empty) fills
	// (0,1) and (0,2) in between and never completes a line.
	g.HandlePitch(strikeAt(0, 0))
	g.HandlePitch(strikeAt(1, 1))
	g.HandlePitch(strikeAt(2, 2))

	snap := g.Snapshot()
	if snap.Wins != 1 {
		t.Errorf("Expected 1 win, got %d", snap.Wins)
	}
	if snap.Outcome != OutcomePlayerWon {
		t.Errorf("Expected player-won outcome, got %v", snap.Outcome)
	}

	if len(saver.calls) != 1 {
		t.Fatalf("Expected exactly 1 persisted score, got %d", len(saver.calls))
	}
	if saver.calls[0] != (savedScore{game: Name, score: 1}) {
		t.Errorf("Unexpected persisted score: %+v", saver.calls[0])
	}

	// Winning auto-resets the board for the next round.
	if snap.Board != ([3][3]Cell{}) {
		t.Errorf("Board should be cleared after a win, got %v", snap.Board)
	}
}

func TestOpponentWinNotPersisted(t *testing.T) {
	saver := &fakeSaver{}
	g := New(testDeps(saver))

	// Player stays away from the top row; the first-empty AI claims
	// (0,0), (0,1), (0,2) and wins.
	g.HandlePitch(strikeAt(2, 0))
	g.HandlePitch(strikeAt(1, 0))
	g.HandlePitch(strikeAt(1, 1))

	snap := g.Snapshot()
	if snap.Losses != 1 {
		t.Errorf("Expected 1 loss, got %d", snap.Losses)
	}
	if snap.Wins != 0 {
		t.Errorf("Expected 0 wins, got %d", snap.Wins)
	}
	if snap.Outcome != OutcomeOpponentWon {
		t.Errorf("Expected opponent-won outcome, got %v", snap.Outcome)
	}
	if len(saver.calls) != 0 {
		t.Errorf("Opponent wins must not be persisted, got %d saves", len(saver.calls))
	}
}

func TestTieDoesNotPersist(t *testing.T) {
	saver := &fakeSaver{}
	g := New(testDeps(saver))

	// Against the first-empty AI this sequence fills the board with
	// no three-in-a-row for either side.
	g.HandlePitch(strikeAt(1, 1))
	g.HandlePitch(strikeAt(0, 2))
	g.HandlePitch(strikeAt(1, 0))
	g.HandlePitch(strikeAt(2, 1))
	g.HandlePitch(strikeAt(2, 2))

	snap := g.Snapshot()
	if snap.Ties != 1 {
		t.Errorf("Expected 1 tie, got %d (wins %d, losses %d)", snap.Ties, snap.Wins, snap.Losses)
	}
	if snap.Outcome != OutcomeTied {
		t.Errorf("Expected tied outcome, got %v", snap.Outcome)
	}
	if len(saver.calls) != 0 {
		t.Errorf("Ties must not be persisted, got %d saves", len(saver.calls))
	}
}

func TestOccupiedCellIgnored(t *testing.T) {
	saver := &fakeSaver{}
	g := New(testDeps(saver))

	g.HandlePitch(strikeAt(1, 1)) // player (1,1), AI takes (0,0)
	before := g.Snapshot().Board

	g.HandlePitch(strikeAt(0, 0)) // occupied by the AI: no mark, no AI move
	g.HandlePitch(strikeAt(1, 1)) // occupied by the player

	if g.Snapshot().Board != before {
		t.Error("Pitches into occupied cells must not change the board")
	}
}

func TestUnclassifiedAndBallIgnored(t *testing.T) {
	saver := &fakeSaver{}
	g := New(testDeps(saver))

	g.HandlePitch(core.PitchEvent{Strike: true}) // no zone
	g.HandlePitch(core.PitchEvent{Strike: false, Zone: core.Zone{Row: 1, Col: 1}, Zoned: true}) // ball
	g.HandlePitch(core.PitchEvent{Strike: true, Zone: core.Zone{Row: 4, Col: 7}, Zoned: true})  // out of grid

	if g.Snapshot().Board != ([3][3]Cell{}) {
		t.Error("Balls and unclassified pitches must leave the board empty")
	}
}

func TestResetClearsCounters(t *testing.T) {
	saver := &fakeSaver{}
	g := New(testDeps(saver))

	g.HandlePitch(strikeAt(0, 0))
	g.HandlePitch(strikeAt(1, 1))
	g.HandlePitch(strikeAt(2, 2)) // win

	g.Reset()

	snap := g.Snapshot()
	if snap.Wins != 0 || snap.Losses != 0 || snap.Ties != 0 {
		t.Errorf("Reset should zero the counters, got %+v", snap)
	}
	if snap.Outcome != OutcomePlaying {
		t.Errorf("Reset should return to playing, got %v", snap.Outcome)
	}
}
