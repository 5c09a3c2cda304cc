package strategy

import "reversi/game"

// Fallback asks two strategies and keeps the heavier proposal. When both propose
// the same cell the first strategy's weight is used.
type Fallback struct {
	search
	first  Strategy
	second Strategy
}

func NewFallback(first, second Strategy, options ...Option) *Fallback {
	return &Fallback{
		search: newSearch(first.Name()+"+"+second.Name(), options),
		first:  first,
		second: second,
	}
}

func (s *Fallback) ChooseMove(m game.ReadOnly, side game.Side) (game.Coord, bool) {
	s.metrics.Start(s.name, 1)
	s.weights = make(map[game.Coord]int, 2)
	if c, ok := s.first.ChooseMove(m, side); ok {
		s.weights[c], _ = s.first.Weight(c)
		s.metrics.AddCandidate()
	}
	if c, ok := s.second.ChooseMove(m, side); ok {
		if _, dup := s.weights[c]; !dup {
			s.weights[c], _ = s.second.Weight(c)
			s.metrics.AddCandidate()
		}
	}
	best, found := BestByWeight(s.weights)
	s.last = s.metrics.Complete(found)
	return best, found
}

func (s *Fallback) Clone() Strategy {
	return NewFallback(s.first.Clone(), s.second.Clone(), s.options...)
}
