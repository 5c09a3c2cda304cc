package game

import "fmt"

// Coord addresses a cell by zero-based row and column. Validity is board relative.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is one of the six lines leaving a hexagonal cell.
type Direction int

const (
	UpLeft Direction = iota
	UpRight
	Left
	Right
	DownLeft
	DownRight
)

var Directions = []Direction{UpLeft, UpRight, Left, Right, DownLeft, DownRight}

func (d Direction) String() string {
	switch d {
	case UpLeft:
		return "up-left"
	case UpRight:
		return "up-right"
	case Left:
		return "left"
	case Right:
		return "right"
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	}
	return "unknown"
}
