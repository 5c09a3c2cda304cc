package match

import (
	"fmt"
	"time"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/player"
	"reversi/strategy"
	"reversi/view"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Agent takes whole turns for one side without outside input.
type Agent interface {
	Side() game.Side
	Strategy() strategy.Strategy
	Play() (player.Turn, error)
}

type Runner struct {
	ID       uuid.UUID
	model    game.Model
	agents   map[game.Side]Agent
	first    game.Side
	maxTurns int
}

// New prepares a game between two agents bound to model, which must not have started.
// first moves first.
func New(model game.Model, first, second Agent, maxTurns int) *Runner {
	if first == nil || second == nil {
		panic("need two agents")
	}
	if first.Side() == second.Side() {
		panic("agents must play different sides")
	}
	if maxTurns <= 0 {
		panic("max turns must be positive")
	}

	return &Runner{
		ID:    uuid.New(),
		model: model,
		agents: map[game.Side]Agent{
			first.Side():  first,
			second.Side(): second,
		},
		first:    first.Side(),
		maxTurns: maxTurns,
	}
}

// Run plays a game on board until it is over or the turn limit is reached.
func (r *Runner) Run(board game.Board) (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{ID: r.ID, First: r.first, StartTime: time.Now()}

	var outcome *game.Outcome
	r.model.AddListener(game.ListenerFuncs{
		OnGameOver: func(o game.Outcome) { outcome = &o },
	})
	if err := r.model.Start(r.first, r.first.Opponent(), board); err != nil {
		return gameMetric, nil, fmt.Errorf("failed to start game %s: %w", r.ID, err)
	}

	second := r.first.Opponent()
	log.Info().Msgf("game %s: %v (%s) against %v (%s), %v is starting", r.ID,
		r.first, r.agents[r.first].Strategy().Name(),
		second, r.agents[second].Strategy().Name(), r.first)

	// Loop until the game is over
	turnCount := 1
	var moveMetrics []metrics.MoveMetric
	for outcome == nil && turnCount <= r.maxTurns {
		side, err := r.model.Turn()
		if err != nil {
			return gameMetric, moveMetrics, err
		}
		before, _ := r.model.Score(side)

		turn, err := r.agents[side].Play()
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("game %s turn %d: %w", r.ID, turnCount, err)
		}

		after, _ := r.model.Score(side)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Side:         side,
			Move:         turn.Move,
			Pass:         turn.Pass,
			Delta:        after - before,
			SearchMetric: turn.Metric,
		})
		if turn.Pass {
			gameMetric.Passes++
		}
		turnCount++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Turns = len(moveMetrics)
	gameMetric.Black, _ = r.model.Score(game.Black)
	gameMetric.White, _ = r.model.Score(game.White)
	gameMetric.Evaluation = game.EvaluateMargin(r.model, game.Black)
	gameMetric.Mobility = game.EvaluateMobility(r.model, game.Black)
	if outcome != nil {
		gameMetric.Winner = outcome.Winner
		gameMetric.Draw = outcome.Draw
		log.Info().Msgf("game %s over after %d turns, winner: %v (X %d, O %d)",
			r.ID, gameMetric.Turns, outcome, gameMetric.Black, gameMetric.White)
	} else {
		gameMetric.Truncated = true
		log.Info().Msgf("game %s stopped after %d turns (no winner yet)", r.ID, r.maxTurns)
	}
	log.Debug().Msgf("final board:\n%s", view.Text(r.model.Board()))

	return gameMetric, moveMetrics, nil
}
