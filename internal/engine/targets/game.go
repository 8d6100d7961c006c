// Package targets implements the target-scoring accumulator: corners of
// the zone grid are worth 5, edge midpoints 3, the center 1, with a
// growing bonus for consecutive strikes.
package targets

import (
	"github.com/vslusny/pitchcoach/internal/core"
	"github.com/vslusny/pitchcoach/internal/engine"
)

// Name is the ledger key for this game.
const Name = "target_scoring"

// pointValues assigns base points to each zone cell.
var pointValues = [3][3]int{
	{5, 3, 5},
	{3, 1, 3},
	{5, 3, 5},
}

// Game accumulates score without any terminal state; the cumulative
// score is persisted after every scoring pitch.
type Game struct {
	deps engine.Deps

	score     int
	streak    int
	lastAward int
}

// New creates a fresh game.
func New(deps engine.Deps) *Game {
	return &Game{deps: deps}
}

func init() {
	engine.Register(Name, "Target Scoring", func(deps engine.Deps) engine.Engine {
		return New(deps)
	})
}

// Name returns the ledger key.
func (g *Game) Name() string {
	return Name
}

// HandlePitch scores a classified strike as base points plus one bonus
// point per consecutive strike beyond the first. A ball resets the
// streak; an unclassified strike changes nothing.
func (g *Game) HandlePitch(ev core.PitchEvent) {
	if !ev.Strike {
		g.streak = 0
		g.lastAward = 0
		return
	}
	if !ev.Zoned || !ev.Zone.Valid() {
		return
	}

	g.streak++
	award := pointValues[ev.Zone.Row][ev.Zone.Col] + (g.streak - 1)
	g.score += award
	g.lastAward = award
	g.deps.Saver.SaveScore(Name, g.score, g.deps.Now())
}

// Reset zeroes the score and the streak.
func (g *Game) Reset() {
	g.score = 0
	g.streak = 0
	g.lastAward = 0
}
