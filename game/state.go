package game

import (
	"fmt"

	"reversi/utils"

	"github.com/rs/zerolog/log"
)

type Status int

const (
	NotStarted Status = iota
	InProgress
	Over
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Over:
		return "over"
	}
	return "unknown"
}

// GameState owns the board, the turn rotation and the pass counter of one game.
// It is not safe for concurrent use.
type GameState struct {
	board     Board
	order     []Side // order[0] is the side to move
	passes    int
	status    Status
	listeners []Listener
}

func NewGameState() *GameState {
	return &GameState{}
}

func (gs *GameState) AddListener(l Listener) {
	if l != nil {
		gs.listeners = append(gs.listeners, l)
	}
}

// Start begins a game on a copy of board with first to move.
func (gs *GameState) Start(first, second Side, board Board) error {
	if gs.status != NotStarted {
		return fmt.Errorf("start: %w", ErrAlreadyStarted)
	}
	if !first.Valid() || !second.Valid() || first == second {
		return fmt.Errorf("start with sides %v and %v: %w", first, second, ErrInvalidArgument)
	}
	if err := board.Validate(); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	gs.board = board.Copy()
	gs.order = []Side{first, second}
	gs.passes = 0
	gs.status = InProgress

	gs.emit(func(l Listener) { l.TurnChanged(first) })
	return nil
}

// MakeMove places side's disc at c. When side has no legal move anywhere, the
// game passes on its behalf instead.
func (gs *GameState) MakeMove(side Side, c Coord) error {
	switch gs.status {
	case Over:
		return nil
	case NotStarted:
		return fmt.Errorf("move %v: %w", c, ErrNotStarted)
	}
	if !gs.board.InBounds(c) {
		return fmt.Errorf("move %v: %w", c, ErrOutOfBounds)
	}
	if side != gs.order[0] {
		gs.emit(func(l Listener) { l.OutOfTurnMove(side) })
		return fmt.Errorf("%v moved while %v is to play: %w", side, gs.order[0], ErrOutOfTurn)
	}
	if !gs.board.HasLegalMove(side) {
		log.Debug().Msgf("%v has no legal move, passing", side)
		return gs.pass()
	}
	if !gs.board.IsLegal(c, side) {
		gs.emit(func(l Listener) { l.IllegalMove(side) })
		return fmt.Errorf("%v at %v: %w", side, c, ErrIllegalMove)
	}

	flipped, err := gs.board.Apply(c, side)
	if err != nil {
		return err
	}
	log.Debug().Msgf("%v played %v flipping %d", side, c, len(flipped))

	gs.passes = 0
	gs.order = utils.Rotate(gs.order, 1)
	gs.emit(func(l Listener) { l.BoardUpdated() })
	next := gs.order[0]
	gs.emit(func(l Listener) { l.TurnChanged(next) })
	return nil
}

// Pass gives the turn away. Two passes in a row end the game.
func (gs *GameState) Pass(side Side) error {
	switch gs.status {
	case Over:
		return nil
	case NotStarted:
		return fmt.Errorf("pass: %w", ErrNotStarted)
	}
	if side != gs.order[0] {
		gs.emit(func(l Listener) { l.OutOfTurnMove(side) })
		return fmt.Errorf("%v passed while %v is to play: %w", side, gs.order[0], ErrOutOfTurn)
	}
	return gs.pass()
}

func (gs *GameState) pass() error {
	gs.order = utils.Rotate(gs.order, 1)
	gs.passes++
	if gs.passes >= 2 {
		gs.status = Over
		outcome := gs.outcome()
		log.Debug().Msgf("game over: %v", outcome)
		gs.emit(func(l Listener) { l.GameOver(outcome) })
		return nil
	}
	gs.emit(func(l Listener) { l.BoardUpdated() })
	next := gs.order[0]
	gs.emit(func(l Listener) { l.TurnChanged(next) })
	return nil
}

func (gs *GameState) outcome() Outcome {
	a, b := gs.order[0], gs.order[1]
	sa, sb := gs.board.Count(a.Disc()), gs.board.Count(b.Disc())
	switch {
	case sa > sb:
		return Outcome{Winner: a}
	case sb > sa:
		return Outcome{Winner: b}
	}
	return Outcome{Draw: true}
}

func (gs *GameState) emit(event func(Listener)) {
	for _, l := range gs.listeners {
		event(l)
	}
}

func (gs *GameState) Turn() (Side, error) {
	if gs.status == NotStarted {
		return 0, fmt.Errorf("turn: %w", ErrNotStarted)
	}
	return gs.order[0], nil
}

// Score counts side's discs on the board.
func (gs *GameState) Score(side Side) (int, error) {
	if gs.status == NotStarted {
		return 0, fmt.Errorf("score: %w", ErrNotStarted)
	}
	if !side.Valid() {
		return 0, fmt.Errorf("score for side %d: %w", side, ErrInvalidArgument)
	}
	return gs.board.Count(side.Disc()), nil
}

func (gs *GameState) IsOver() (bool, error) {
	if gs.status == NotStarted {
		return false, fmt.Errorf("is over: %w", ErrNotStarted)
	}
	return gs.status == Over, nil
}

func (gs *GameState) Status() Status {
	return gs.status
}

// Passes is the number of consecutive passes since the last move.
func (gs *GameState) Passes() int {
	return gs.passes
}

func (gs *GameState) IsLegalMove(c Coord, side Side) (bool, error) {
	if gs.status == NotStarted {
		return false, fmt.Errorf("legality of %v: %w", c, ErrNotStarted)
	}
	if !gs.board.InBounds(c) {
		return false, fmt.Errorf("legality of %v: %w", c, ErrOutOfBounds)
	}
	return gs.board.IsLegal(c, side), nil
}

func (gs *GameState) HasLegalMove(side Side) bool {
	return gs.board.HasLegalMove(side)
}

// Board returns a deep copy of the current board.
func (gs *GameState) Board() Board {
	return gs.board.Copy()
}

// BoardSize is the number of rows.
func (gs *GameState) BoardSize() int {
	return len(gs.board)
}

func (gs *GameState) Cell(c Coord) (Cell, error) {
	return gs.board.At(c)
}

// Copy returns a snapshot of the game without listeners.
func (gs *GameState) Copy() *GameState {
	return &GameState{
		board:  gs.board.Copy(),
		order:  append([]Side(nil), gs.order...),
		passes: gs.passes,
		status: gs.status,
	}
}
