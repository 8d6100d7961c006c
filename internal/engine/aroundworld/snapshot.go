package aroundworld

import "github.com/vslusny/pitchcoach/internal/core"

// Snapshot is the read-only view of the game consumed by the renderer.
type Snapshot struct {
	Step           int       // zones already hit, 0..8
	Target         core.Zone // next zone to hit
	Pitches        int       // pitches thrown this run
	Completions    int       // runs finished since the last reset
	LastRunPitches int       // pitch count of the most recent completion
}

// Snapshot returns the current run state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Step:           g.step,
		Target:         route[g.step],
		Pitches:        g.pitches,
		Completions:    g.completions,
		LastRunPitches: g.lastRunPitches,
	}
}

// Route returns the fixed traversal order so the renderer can draw it.
func Route() [9]core.Zone {
	return route
}
