// Package tictactoe implements tic-tac-toe played against a random AI on
// the strike-zone grid. A strike into an empty cell claims it for the
// player; the AI answers with a uniformly random empty cell.
package tictactoe

import (
	"github.com/vslusny/pitchcoach/internal/core"
	"github.com/vslusny/pitchcoach/internal/engine"
)

// Name is the ledger key for this game.
const Name = "tic_tac_toe"

// Cell is the state of one board square.
type Cell int8

const (
	CellEmpty Cell = iota
	CellPlayer
	CellOpponent
)

// Outcome is the round state the renderer reacts to.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomePlayerWon
	OutcomeOpponentWon
	OutcomeTied
)

// Game holds the board plus the session's win/loss/tie counters.
// The win counter is the persisted score; losses and ties are only
// surfaced through the snapshot.
type Game struct {
	deps  engine.Deps
	board [3][3]Cell

	wins   int
	losses int
	ties   int
	last   Outcome
}

// New creates a fresh game.
func New(deps engine.Deps) *Game {
	return &Game{deps: deps}
}

func init() {
	engine.Register(Name, "Tic-Tac-Toe", func(deps engine.Deps) engine.Engine {
		return New(deps)
	})
}

// Name returns the ledger key.
func (g *Game) Name() string {
	return Name
}

// HandlePitch marks the pitched cell for the player when it is a strike
// into an empty, classified zone, evaluates the round, and lets the AI
// answer. Pitches into occupied cells are ignored entirely (no AI move).
func (g *Game) HandlePitch(ev core.PitchEvent) {
	if !ev.Strike || !ev.Zoned || !ev.Zone.Valid() {
		return
	}
	if g.board[ev.Zone.Row][ev.Zone.Col] != CellEmpty {
		return
	}

	g.last = OutcomePlaying
	g.board[ev.Zone.Row][ev.Zone.Col] = CellPlayer
	if g.wonBy(CellPlayer) {
		g.wins++
		g.last = OutcomePlayerWon
		g.deps.Saver.SaveScore(Name, g.wins, g.deps.Now())
		g.resetBoard()
		return
	}
	if g.boardFull() {
		g.ties++
		g.last = OutcomeTied
		g.resetBoard()
		return
	}

	g.opponentMove()
	if g.wonBy(CellOpponent) {
		g.losses++
		g.last = OutcomeOpponentWon
		g.resetBoard()
		return
	}
	if g.boardFull() {
		g.ties++
		g.last = OutcomeTied
		g.resetBoard()
	}
}

// opponentMove marks a uniformly random empty cell for the AI.
func (g *Game) opponentMove() {
	var empty []core.Zone
	for r := range 3 {
		for c := range 3 {
			if g.board[r][c] == CellEmpty {
				empty = append(empty, core.Zone{Row: r, Col: c})
			}
		}
	}
	if len(empty) == 0 {
		return
	}
	pick := empty[g.deps.Rand.Intn(len(empty))]
	g.board[pick.Row][pick.Col] = CellOpponent
}

// wonBy checks the standard three-in-a-row rule for the given mark
// across the 3 rows, 3 columns, and 2 diagonals.
func (g *Game) wonBy(mark Cell) bool {
	for i := range 3 {
		if g.board[i][0] == mark && g.board[i][1] == mark && g.board[i][2] == mark {
			return true
		}
		if g.board[0][i] == mark && g.board[1][i] == mark && g.board[2][i] == mark {
			return true
		}
	}
	if g.board[0][0] == mark && g.board[1][1] == mark && g.board[2][2] == mark {
		return true
	}
	return g.board[0][2] == mark && g.board[1][1] == mark && g.board[2][0] == mark
}

func (g *Game) boardFull() bool {
	for r := range 3 {
		for c := range 3 {
			if g.board[r][c] == CellEmpty {
				return false
			}
		}
	}
	return true
}

// resetBoard clears the board for the next round, keeping the counters.
func (g *Game) resetBoard() {
	g.board = [3][3]Cell{}
}

// Reset returns the engine to its initial state: empty board, all
// counters zero. Persisted history is unaffected.
func (g *Game) Reset() {
	g.resetBoard()
	g.wins = 0
	g.losses = 0
	g.ties = 0
	g.last = OutcomePlaying
}
