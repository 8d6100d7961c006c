package targets

import "github.com/vslusny/pitchcoach/internal/core"

// Snapshot is the read-only view of the game consumed by the renderer.
type Snapshot struct {
	Score     int
	Streak    int
	LastAward int
}

// Snapshot returns the current score, streak, and last award.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{Score: g.score, Streak: g.streak, LastAward: g.lastAward}
}

// PointValue returns the base points for a zone cell, or 0 when the
// cell is outside the grid. Exposed so the renderer can label the grid.
func PointValue(z core.Zone) int {
	if !z.Valid() {
		return 0
	}
	return pointValues[z.Row][z.Col]
}
