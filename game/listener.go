package game

// Outcome describes how a finished game ended. Winner is unset when Draw is true.
type Outcome struct {
	Winner Side
	Draw   bool
}

func (o Outcome) String() string {
	if o.Draw {
		return "draw"
	}
	return o.Winner.String()
}

// Listener receives every event a GameState emits, synchronously and in registration order.
// Filtering events by side is up to the listener.
type Listener interface {
	TurnChanged(side Side)
	BoardUpdated()
	GameOver(outcome Outcome)
	IllegalMove(side Side)
	OutOfTurnMove(side Side)
}

// ListenerFuncs adapts optional callbacks to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnTurnChanged   func(Side)
	OnBoardUpdated  func()
	OnGameOver      func(Outcome)
	OnIllegalMove   func(Side)
	OnOutOfTurnMove func(Side)
}

func (f ListenerFuncs) TurnChanged(side Side) {
	if f.OnTurnChanged != nil {
		f.OnTurnChanged(side)
	}
}

func (f ListenerFuncs) BoardUpdated() {
	if f.OnBoardUpdated != nil {
		f.OnBoardUpdated()
	}
}

func (f ListenerFuncs) GameOver(outcome Outcome) {
	if f.OnGameOver != nil {
		f.OnGameOver(outcome)
	}
}

func (f ListenerFuncs) IllegalMove(side Side) {
	if f.OnIllegalMove != nil {
		f.OnIllegalMove(side)
	}
}

func (f ListenerFuncs) OutOfTurnMove(side Side) {
	if f.OnOutOfTurnMove != nil {
		f.OnOutOfTurnMove(side)
	}
}
