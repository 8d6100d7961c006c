// Package speed implements the speed challenge: hit a randomly generated
// target speed and zone within the difficulty's tolerance.
package speed

import (
	"math"

	"github.com/vslusny/pitchcoach/internal/core"
	"github.com/vslusny/pitchcoach/internal/engine"
)

// Name is the ledger key for this game.
const Name = "speed_challenge"

// Difficulty selects the target speed band and matching tolerance.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// speedSpread is added on top of the difficulty minimum when rolling a
// target speed.
const speedSpread = 20.0

// params returns the minimum target speed (mph) and the allowed speed
// tolerance for the difficulty.
func (d Difficulty) params() (minSpeed, tolerance float64) {
	switch d {
	case Medium:
		return 50, 2
	case Hard:
		return 60, 1
	default:
		return 40, 3
	}
}

func (d Difficulty) String() string {
	switch d {
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "easy"
	}
}

// ParseDifficulty maps a preset name to a Difficulty; unknown names fall
// back to Easy.
func ParseDifficulty(name string) Difficulty {
	switch name {
	case "medium":
		return Medium
	case "hard":
		return Hard
	default:
		return Easy
	}
}

// Target is the speed and zone the next pitch has to match.
type Target struct {
	Speed float64
	Zone  core.Zone
}

// Game tracks the current target and the number of targets hit.
// The hit counter is persisted after every successful hit.
type Game struct {
	deps engine.Deps

	difficulty Difficulty
	target     Target
	hits       int
}

// New creates a game on Easy with a freshly rolled target.
func New(deps engine.Deps) *Game {
	g := &Game{deps: deps, difficulty: Easy}
	g.rollTarget()
	return g
}

func init() {
	engine.Register(Name, "Speed Challenge", func(deps engine.Deps) engine.Engine {
		return New(deps)
	})
}

// Name returns the ledger key.
func (g *Game) Name() string {
	return Name
}

// SetDifficulty switches presets and rolls a new target.
func (g *Game) SetDifficulty(d Difficulty) {
	g.difficulty = d
	g.rollTarget()
}

// rollTarget generates a new random target from the difficulty's band.
func (g *Game) rollTarget() {
	minSpeed, _ := g.difficulty.params()
	g.target = Target{
		Speed: minSpeed + g.deps.Rand.Float64()*speedSpread,
		Zone: core.Zone{
			Row: g.deps.Rand.Intn(3),
			Col: g.deps.Rand.Intn(3),
		},
	}
}

// HandlePitch checks a classified strike against the current target:
// the speed must be within tolerance and the zone must match exactly.
// A hit persists the hit counter and rolls a new target; misses leave
// the target unchanged.
func (g *Game) HandlePitch(ev core.PitchEvent) {
	if !ev.Strike || !ev.Zoned || !ev.Zone.Valid() {
		return
	}

	_, tolerance := g.difficulty.params()
	if math.Abs(ev.Speed-g.target.Speed) > tolerance || ev.Zone != g.target.Zone {
		return
	}

	g.hits++
	g.deps.Saver.SaveScore(Name, g.hits, g.deps.Now())
	g.rollTarget()
}

// Reset zeroes the hit counter and rolls a new target. The difficulty
// selection is kept.
func (g *Game) Reset() {
	g.hits = 0
	g.rollTarget()
}
