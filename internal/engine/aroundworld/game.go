// Package aroundworld implements the around-the-world drill: hit all
// nine zone cells in a fixed order using as few pitches as possible.
package aroundworld

import (
	"github.com/vslusny/pitchcoach/internal/core"
	"github.com/vslusny/pitchcoach/internal/engine"
)

// Name is the ledger key for this game.
const Name = "around_world"

// route is the fixed traversal order: top row left-to-right, right
// column down, bottom row right-to-left, left column up, center last.
var route = [9]core.Zone{
	{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	{Row: 1, Col: 2},
	{Row: 2, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 0},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
}

// Game tracks the current step along the route and counts every pitch
// thrown. Completing the route persists the pitch count; fewer is better.
type Game struct {
	deps engine.Deps

	step    int
	pitches int

	completions    int
	lastRunPitches int
}

// New creates a fresh game.
func New(deps engine.Deps) *Game {
	return &Game{deps: deps}
}

func init() {
	engine.Register(Name, "Around the World", func(deps engine.Deps) engine.Engine {
		return New(deps)
	})
}

// Name returns the ledger key.
func (g *Game) Name() string {
	return Name
}

// HandlePitch counts the pitch regardless of outcome and advances the
// route only on a strike landing exactly on the current target zone.
// Reaching the end of the route persists the pitch count and starts a
// new run.
func (g *Game) HandlePitch(ev core.PitchEvent) {
	g.pitches++

	if !ev.Strike || !ev.Zoned || ev.Zone != route[g.step] {
		return
	}

	g.step++
	if g.step < len(route) {
		return
	}

	g.completions++
	g.lastRunPitches = g.pitches
	g.deps.Saver.SaveScore(Name, g.pitches, g.deps.Now())
	g.step = 0
	g.pitches = 0
}

// Reset restarts the run from the first zone.
func (g *Game) Reset() {
	g.step = 0
	g.pitches = 0
	g.completions = 0
	g.lastRunPitches = 0
}
