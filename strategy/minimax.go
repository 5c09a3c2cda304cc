package strategy

import "reversi/game"

// Minimax looks two plies ahead: each move is followed by the opponent's
// greediest reply. A move's weight is the disc margin before the move minus the
// margin after the reply.
type Minimax struct {
	search
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{search: newSearch("minimax", options)}
}

func (s *Minimax) ChooseMove(m game.ReadOnly, side game.Side) (game.Coord, bool) {
	board := m.Board()
	return s.rank(board, board.LegalMoves(side), func(b game.Board, c game.Coord) int {
		return swing(b, side, c)
	})
}

func (s *Minimax) Clone() Strategy {
	return NewMinimax(s.options...)
}

func swing(board game.Board, side game.Side, c game.Coord) int {
	opponent := side.Opponent()
	gs := game.NewGameState()
	if err := gs.Start(side, opponent, board); err != nil {
		return 0
	}
	before := margin(gs, side)
	if err := gs.MakeMove(side, c); err != nil {
		return 0
	}
	if reply, ok := NewMaximizeCapture().ChooseMove(gs, opponent); ok {
		// Cannot fail: the reply is legal and the opponent is to move.
		_ = gs.MakeMove(opponent, reply)
	}
	return before - margin(gs, side)
}

func margin(m game.ReadOnly, side game.Side) int {
	own, _ := m.Score(side)
	opp, _ := m.Score(side.Opponent())
	return own - opp
}
