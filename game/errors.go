package game

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("coordinate out of bounds")
	ErrNotStarted           = errors.New("game not started")
	ErrAlreadyStarted       = errors.New("game already started")
	ErrOutOfTurn            = errors.New("move out of turn")
	ErrIllegalMove          = errors.New("illegal move")
	ErrInvalidArgument      = errors.New("invalid argument")
)
