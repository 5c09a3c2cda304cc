package game

// Side is one of the two participants. The zero value is not a side.
type Side int

const (
	Black Side = iota + 1 // moves first by convention
	White
)

func (s Side) Valid() bool {
	return s == Black || s == White
}

func (s Side) Opponent() Side {
	switch s {
	case Black:
		return White
	case White:
		return Black
	}
	return s
}

// Disc returns the cell state owned by s.
func (s Side) Disc() Cell {
	switch s {
	case Black:
		return BlackDisc
	case White:
		return WhiteDisc
	}
	return Empty
}

func (s Side) String() string {
	switch s {
	case Black:
		return "X"
	case White:
		return "O"
	}
	return "?"
}

// Cell is the occupancy of a single board cell.
type Cell int8

const (
	Empty Cell = iota
	BlackDisc
	WhiteDisc
)

func (c Cell) Valid() bool {
	return c >= Empty && c <= WhiteDisc
}

// Side reports the owner of an occupied cell.
func (c Cell) Side() (Side, bool) {
	switch c {
	case BlackDisc:
		return Black, true
	case WhiteDisc:
		return White, true
	}
	return 0, false
}

func (c Cell) String() string {
	if s, ok := c.Side(); ok {
		return s.String()
	}
	return "-"
}
