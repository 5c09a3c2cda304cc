package strategy

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

const (
	CornerBonus = 4
	AvoidBonus  = 2
)

// Strategy ranks the legal moves of a side and picks one. A false result means
// nothing qualified and the side should pass. Strategies never modify the game
// they inspect and are not safe for concurrent use; Clone one per goroutine.
type Strategy interface {
	ChooseMove(m game.ReadOnly, side game.Side) (game.Coord, bool)
	// Weight returns the weight computed for c by the last ChooseMove.
	Weight(c game.Coord) (int, bool)
	Clone() Strategy
	Name() string
	Metric() metrics.SearchMetric
}

func AllLegalMoves(m game.ReadOnly, side game.Side) []game.Coord {
	return m.Board().LegalMoves(side)
}

// ScoreDelta is how many discs side gains by playing c, simulated on a copy of the board.
func ScoreDelta(m game.ReadOnly, side game.Side, c game.Coord) int {
	return scoreDelta(m.Board(), side, c)
}

func scoreDelta(board game.Board, side game.Side, c game.Coord) int {
	gs := game.NewGameState()
	if err := gs.Start(side, side.Opponent(), board); err != nil {
		return 0
	}
	before, _ := gs.Score(side)
	if err := gs.MakeMove(side, c); err != nil {
		return 0
	}
	after, _ := gs.Score(side)
	return after - before
}

// BestByWeight returns the heaviest coordinate. Ties go to the one closest to
// (0,0), then the smaller column, then the smaller row.
func BestByWeight(weights map[game.Coord]int) (game.Coord, bool) {
	var best game.Coord
	found := false
	for c, w := range weights {
		if !found || better(c, w, best, weights[best]) {
			best = c
			found = true
		}
	}
	return best, found
}

func better(c game.Coord, w int, than game.Coord, thanWeight int) bool {
	if w != thanWeight {
		return w > thanWeight
	}
	d, thanD := distance2(c), distance2(than)
	if d != thanD {
		return d < thanD
	}
	if c.Col != than.Col {
		return c.Col < than.Col
	}
	return c.Row < than.Row
}

// distance2 is the squared Euclidean distance to (0,0).
func distance2(c game.Coord) int {
	return c.Row*c.Row + c.Col*c.Col
}
