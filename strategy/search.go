package strategy

import (
	"reversi/experiments/metrics"
	"reversi/game"

	"golang.org/x/sync/errgroup"
)

type Option func(s *search)

// WithWorkers weighs candidates on up to n goroutines, each on its own board copy.
func WithWorkers(n int) Option {
	return func(s *search) {
		if n > 0 {
			s.workers = n
		}
	}
}

func WithMetrics() Option {
	return func(s *search) {
		s.metrics = metrics.NewCollector()
	}
}

// WithSeed seeds strategies that draw random numbers.
func WithSeed(seed uint64) Option {
	return func(s *search) {
		s.seed = seed
	}
}

// search holds what every strategy shares: options, the weights of the last
// ranking and its metric.
type search struct {
	name    string
	workers int
	seed    uint64
	metrics metrics.Collector
	options []Option
	weights map[game.Coord]int
	last    metrics.SearchMetric
}

func newSearch(name string, options []Option) search {
	s := search{ // Default values
		name:    name,
		workers: 1,
		seed:    1,
		metrics: metrics.NewDummyCollector(),
		options: options,
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

func (s *search) Name() string {
	return s.name
}

func (s *search) Weight(c game.Coord) (int, bool) {
	w, ok := s.weights[c]
	return w, ok
}

func (s *search) Metric() metrics.SearchMetric {
	return s.last
}

// rank weighs every candidate on a private copy of board and returns the best.
// Weights are merged by candidate index so the result does not depend on
// goroutine scheduling.
func (s *search) rank(board game.Board, candidates []game.Coord, weigh func(game.Board, game.Coord) int) (game.Coord, bool) {
	s.metrics.Start(s.name, s.workers)

	weights := make([]int, len(candidates))
	if s.workers <= 1 || len(candidates) <= 1 {
		for i, c := range candidates {
			weights[i] = weigh(board.Copy(), c)
			s.metrics.AddCandidate()
		}
	} else {
		var g errgroup.Group
		g.SetLimit(s.workers)
		for i, c := range candidates {
			i, c := i, c
			g.Go(func() error {
				weights[i] = weigh(board.Copy(), c)
				s.metrics.AddCandidate()
				return nil
			})
		}
		// Cannot fail: weigh reports no errors.
		_ = g.Wait()
	}

	s.weights = make(map[game.Coord]int, len(candidates))
	for i, c := range candidates {
		s.weights[c] = weights[i]
	}
	best, found := BestByWeight(s.weights)
	s.last = s.metrics.Complete(found)
	return best, found
}
