package strategy

import "reversi/game"

// MaximizeCapture plays the move gaining the most discs.
type MaximizeCapture struct {
	search
}

func NewMaximizeCapture(options ...Option) *MaximizeCapture {
	return &MaximizeCapture{search: newSearch("capture", options)}
}

func (s *MaximizeCapture) ChooseMove(m game.ReadOnly, side game.Side) (game.Coord, bool) {
	board := m.Board()
	return s.rank(board, board.LegalMoves(side), func(b game.Board, c game.Coord) int {
		return scoreDelta(b, side, c)
	})
}

func (s *MaximizeCapture) Clone() Strategy {
	return NewMaximizeCapture(s.options...)
}
