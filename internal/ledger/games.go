package ledger

// Fixed identifiers of the four practice games. The ledger owns this
// closed set; scores for any other identifier are rejected.
const (
	GameTicTacToe      = "tic_tac_toe"
	GameTargetScoring  = "target_scoring"
	GameAroundWorld    = "around_world"
	GameSpeedChallenge = "speed_challenge"
)

// NoBestPitches is the "no completed run yet" sentinel for around_world,
// whose best value counts pitches and is therefore lower-is-better.
const NoBestPitches = 999

// historyLimit bounds each game's score history; oldest entries are
// evicted first.
const historyLimit = 100

type direction int

const (
	higherIsBetter direction = iota
	lowerIsBetter
)

// gameSpec describes how one game's best value is stored and compared.
type gameSpec struct {
	bestKey     string
	dir         direction
	defaultBest int
}

var gameSpecs = map[string]gameSpec{
	GameTicTacToe:      {bestKey: "high_score_wins", dir: higherIsBetter},
	GameTargetScoring:  {bestKey: "high_score", dir: higherIsBetter},
	GameAroundWorld:    {bestKey: "best_pitches", dir: lowerIsBetter, defaultBest: NoBestPitches},
	GameSpeedChallenge: {bestKey: "high_score", dir: higherIsBetter},
}

// better reports whether candidate strictly beats current under the
// game's comparison rule. Ties never replace the stored best.
func (s gameSpec) better(candidate, current int) bool {
	if s.dir == lowerIsBetter {
		return candidate < current
	}
	return candidate > current
}

// Games returns the known game identifiers in a stable order.
func Games() []string {
	return []string{GameTicTacToe, GameTargetScoring, GameAroundWorld, GameSpeedChallenge}
}

// Known reports whether the identifier is one of the four games.
func Known(gameID string) bool {
	_, ok := gameSpecs[gameID]
	return ok
}
