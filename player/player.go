package player

import (
	"fmt"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/strategy"
)

// Player binds a side of a game to a source of moves.
type Player interface {
	Side() game.Side
	IsHuman() bool
	// Move submits a move for the player's side. Robots ignore c and play their own choice.
	Move(c game.Coord) error
	Pass() error
}

// Human forwards moves picked elsewhere, e.g. by a user interface.
type Human struct {
	side  game.Side
	model game.Model
}

func NewHuman(side game.Side, model game.Model) *Human {
	return &Human{side: side, model: model}
}

func (h *Human) Side() game.Side { return h.side }
func (h *Human) IsHuman() bool   { return true }

func (h *Human) Move(c game.Coord) error {
	return h.model.MakeMove(h.side, c)
}

func (h *Human) Pass() error {
	return h.model.Pass(h.side)
}

// Turn records what a robot did with its turn.
type Turn struct {
	Move   game.Coord
	Pass   bool
	Metric metrics.SearchMetric
}

// Robot picks its moves with a strategy. Each turn runs on a fresh clone.
type Robot struct {
	side     game.Side
	model    game.Model
	strategy strategy.Strategy
}

func NewRobot(side game.Side, model game.Model, s strategy.Strategy) *Robot {
	return &Robot{side: side, model: model, strategy: s}
}

func (r *Robot) Side() game.Side { return r.side }
func (r *Robot) IsHuman() bool   { return false }

func (r *Robot) Strategy() strategy.Strategy {
	return r.strategy
}

func (r *Robot) Move(game.Coord) error {
	_, err := r.Play()
	return err
}

func (r *Robot) Pass() error {
	return r.model.Pass(r.side)
}

// Play asks the strategy for a move and submits it, passing when the strategy has none.
func (r *Robot) Play() (Turn, error) {
	s := r.strategy.Clone()
	c, ok := s.ChooseMove(r.model, r.side)
	turn := Turn{Move: c, Pass: !ok, Metric: s.Metric()}
	if !ok {
		if err := r.model.Pass(r.side); err != nil {
			return turn, fmt.Errorf("%s pass for %v: %w", s.Name(), r.side, err)
		}
		return turn, nil
	}
	if err := r.model.MakeMove(r.side, c); err != nil {
		return turn, fmt.Errorf("%s move %v for %v: %w", s.Name(), c, r.side, err)
	}
	return turn, nil
}
