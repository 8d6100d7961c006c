package tictactoe

// Snapshot is the read-only view of the game consumed by the renderer.
type Snapshot struct {
	Board   [3][3]Cell
	Wins    int
	Losses  int
	Ties    int
	Outcome Outcome
}

// Snapshot returns the current board and counters.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:   g.board,
		Wins:    g.wins,
		Losses:  g.losses,
		Ties:    g.ties,
		Outcome: g.last,
	}
}

func (c Cell) String() string {
	switch c {
	case CellPlayer:
		return "X"
	case CellOpponent:
		return "O"
	default:
		return "."
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerWon:
		return "won"
	case OutcomeOpponentWon:
		return "lost"
	case OutcomeTied:
		return "tied"
	default:
		return "playing"
	}
}
