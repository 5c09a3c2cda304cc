package strategy

import (
	"reversi/game"
	"reversi/utils"

	"golang.org/x/exp/rand"
)

// Random plays any legal move except the one MaximizeCapture would pick.
type Random struct {
	search
	rng *rand.Rand
}

func NewRandom(options ...Option) *Random {
	s := &Random{search: newSearch("random", options)}
	s.rng = rand.New(rand.NewSource(s.seed))
	return s
}

func (s *Random) ChooseMove(m game.ReadOnly, side game.Side) (game.Coord, bool) {
	board := m.Board()
	moves := board.LegalMoves(side)
	if best, ok := NewMaximizeCapture().ChooseMove(m, side); ok {
		if i := utils.FindIndex(moves, best); i >= 0 {
			moves = append(moves[:i], moves[i+1:]...)
		}
	}
	if _, ok := s.rank(board, moves, func(b game.Board, c game.Coord) int {
		return scoreDelta(b, side, c)
	}); !ok {
		return game.Coord{}, false
	}
	return moves[s.rng.Intn(len(moves))], true
}

// Clone draws the copy's seed from this strategy's generator.
func (s *Random) Clone() Strategy {
	options := append(append([]Option(nil), s.options...), WithSeed(s.rng.Uint64()))
	return NewRandom(options...)
}
