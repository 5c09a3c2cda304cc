package strategy

import "reversi/game"

// PreferCorners only plays corner cells.
type PreferCorners struct {
	search
}

func NewPreferCorners(options ...Option) *PreferCorners {
	return &PreferCorners{search: newSearch("corners", options)}
}

func (s *PreferCorners) ChooseMove(m game.ReadOnly, side game.Side) (game.Coord, bool) {
	board := m.Board()
	var candidates []game.Coord
	for _, c := range board.Corners() {
		if board.IsLegal(c, side) {
			candidates = append(candidates, c)
		}
	}
	return s.rank(board, candidates, func(b game.Board, c game.Coord) int {
		return scoreDelta(b, side, c) + CornerBonus
	})
}

func (s *PreferCorners) Clone() Strategy {
	return NewPreferCorners(s.options...)
}

// AvoidNearCorners only plays cells with no corner among their neighbours.
type AvoidNearCorners struct {
	search
}

func NewAvoidNearCorners(options ...Option) *AvoidNearCorners {
	return &AvoidNearCorners{search: newSearch("avoid", options)}
}

func (s *AvoidNearCorners) ChooseMove(m game.ReadOnly, side game.Side) (game.Coord, bool) {
	board := m.Board()
	var candidates []game.Coord
	for _, c := range board.LegalMoves(side) {
		if !nearCorner(board, c) {
			candidates = append(candidates, c)
		}
	}
	return s.rank(board, candidates, func(b game.Board, c game.Coord) int {
		return scoreDelta(b, side, c) + AvoidBonus
	})
}

func (s *AvoidNearCorners) Clone() Strategy {
	return NewAvoidNearCorners(s.options...)
}

func nearCorner(b game.Board, c game.Coord) bool {
	for _, n := range b.Neighbors(c) {
		if b.IsCorner(n) {
			return true
		}
	}
	return false
}
