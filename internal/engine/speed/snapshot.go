package speed

// Snapshot is the read-only view of the game consumed by the renderer.
type Snapshot struct {
	Difficulty Difficulty
	Target     Target
	Hits       int
}

// Snapshot returns the current target, difficulty, and hit count.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Difficulty: g.difficulty,
		Target:     g.target,
		Hits:       g.hits,
	}
}
