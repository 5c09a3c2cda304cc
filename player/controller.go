package player

import (
	"errors"

	"reversi/game"

	"github.com/rs/zerolog/log"
)

// Controller listens to a game on behalf of one player. Robot players move as
// soon as their turn comes up; events for the other side are ignored.
//
// Moves happen inside the notification, so two robot controllers on the same
// game play it out within the call that started it.
type Controller struct {
	player  Player
	outcome *game.Outcome
}

// NewController registers the controller with model.
func NewController(p Player, model game.Model) *Controller {
	c := &Controller{player: p}
	model.AddListener(c)
	return c
}

func (c *Controller) TurnChanged(side game.Side) {
	if side != c.player.Side() || c.player.IsHuman() {
		return
	}
	err := c.player.Move(game.Coord{})
	switch {
	case err == nil:
	case errors.Is(err, game.ErrIllegalMove), errors.Is(err, game.ErrOutOfTurn):
		// Already announced to every listener.
	default:
		log.Error().Err(err).Msgf("%v failed to play", side)
	}
}

func (c *Controller) BoardUpdated() {}

func (c *Controller) GameOver(outcome game.Outcome) {
	c.outcome = &outcome
	log.Debug().Msgf("%v saw the game end: %v", c.player.Side(), outcome)
}

func (c *Controller) IllegalMove(side game.Side) {
	if side == c.player.Side() {
		log.Warn().Msgf("%v tried an illegal move", side)
	}
}

func (c *Controller) OutOfTurnMove(side game.Side) {
	if side == c.player.Side() {
		log.Warn().Msgf("%v moved out of turn", side)
	}
}

// Outcome reports how the game ended, if it has.
func (c *Controller) Outcome() (game.Outcome, bool) {
	if c.outcome == nil {
		return game.Outcome{}, false
	}
	return *c.outcome, true
}
