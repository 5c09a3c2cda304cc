package game

// ReadOnly is the query surface of a game. Board snapshots are deep copies.
type ReadOnly interface {
	Board() Board
	BoardSize() int
	Cell(c Coord) (Cell, error)
	Turn() (Side, error)
	Score(side Side) (int, error)
	IsOver() (bool, error)
	IsLegalMove(c Coord, side Side) (bool, error)
	HasLegalMove(side Side) bool
}

// Model adds the command and notification surfaces.
type Model interface {
	ReadOnly
	Start(first, second Side, board Board) error
	MakeMove(side Side, c Coord) error
	Pass(side Side) error
	AddListener(l Listener)
}

// Evaluate scores a position between -1 and 1 from side's perspective.
type Evaluate func(m ReadOnly, side Side) float64
