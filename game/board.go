package game

import "fmt"

const (
	DefaultMaxWidth = 11
	DefaultMinWidth = 6
)

// Board is a hexagon of hexagonal cells stored as rows of varying length.
// Row lengths grow by one from the first row to the median row and shrink back.
type Board [][]Cell

// NewBoard builds a board whose median row holds maxWidth cells and whose first
// and last rows hold minWidth cells, seeded with three discs per side around
// the centre.
func NewBoard(maxWidth, minWidth int) (Board, error) {
	if minWidth < 1 || maxWidth-minWidth < 2 {
		return nil, fmt.Errorf("max width %d, min width %d: %w", maxWidth, minWidth, ErrInvalidConfiguration)
	}

	spread := maxWidth - minWidth
	b := make(Board, 2*spread+1)
	for r := range b {
		width := maxWidth - abs(spread-r)
		b[r] = make([]Cell, width)
	}

	r := len(b) / 2
	c := len(b[r]) / 2
	b[r-1][c-1] = BlackDisc
	b[r+1][c-1] = BlackDisc
	b[r][c+1] = BlackDisc
	b[r-1][c] = WhiteDisc
	b[r+1][c] = WhiteDisc
	b[r][c-1] = WhiteDisc

	return b, nil
}

func DefaultBoard() Board {
	b, err := NewBoard(DefaultMaxWidth, DefaultMinWidth)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Board) Rows() int {
	return len(b)
}

// Median is the index of the widest row.
func (b Board) Median() int {
	return len(b) / 2
}

// Size is the total number of cells.
func (b Board) Size() int {
	n := 0
	for _, row := range b {
		n += len(row)
	}
	return n
}

func (b Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < len(b) && c.Col >= 0 && c.Col < len(b[c.Row])
}

func (b Board) At(c Coord) (Cell, error) {
	if !b.InBounds(c) {
		return Empty, fmt.Errorf("cell %v: %w", c, ErrOutOfBounds)
	}
	return b[c.Row][c.Col], nil
}

func (b Board) Set(c Coord, cell Cell) error {
	if !b.InBounds(c) {
		return fmt.Errorf("cell %v: %w", c, ErrOutOfBounds)
	}
	b[c.Row][c.Col] = cell
	return nil
}

// Copy returns a deep copy of the board.
func (b Board) Copy() Board {
	if b == nil {
		return nil
	}
	out := make(Board, len(b))
	for r, row := range b {
		out[r] = make([]Cell, len(row))
		copy(out[r], row)
	}
	return out
}

func (b Board) Count(cell Cell) int {
	n := 0
	for _, row := range b {
		for _, c := range row {
			if c == cell {
				n++
			}
		}
	}
	return n
}

// Validate checks that the board has rows and only known cell states.
func (b Board) Validate() error {
	if len(b) == 0 {
		return fmt.Errorf("empty board: %w", ErrInvalidArgument)
	}
	for r, row := range b {
		if len(row) == 0 {
			return fmt.Errorf("row %d is missing: %w", r, ErrInvalidArgument)
		}
		for c, cell := range row {
			if !cell.Valid() {
				return fmt.Errorf("cell %v holds %d: %w", Coord{r, c}, cell, ErrInvalidArgument)
			}
		}
	}
	return nil
}

// Corners returns the six extreme cells: both ends of the first, median and last rows.
func (b Board) Corners() []Coord {
	if len(b) == 0 {
		return nil
	}
	mid := b.Median()
	last := len(b) - 1
	return []Coord{
		{0, 0}, {0, len(b[0]) - 1},
		{mid, 0}, {mid, len(b[mid]) - 1},
		{last, 0}, {last, len(b[last]) - 1},
	}
}

func (b Board) IsCorner(c Coord) bool {
	for _, corner := range b.Corners() {
		if corner == c {
			return true
		}
	}
	return false
}

// Step returns the coordinate one cell away from c in direction d. The result may be out of bounds.
// Diagonal column deltas depend on where the destination row sits relative to the median row.
func (b Board) Step(c Coord, d Direction) Coord {
	mid := b.Median()
	switch d {
	case Left:
		return Coord{c.Row, c.Col - 1}
	case Right:
		return Coord{c.Row, c.Col + 1}
	case DownLeft, DownRight:
		next := Coord{c.Row + 1, c.Col}
		if next.Row <= mid {
			if d == DownRight {
				next.Col++
			}
		} else if d == DownLeft {
			next.Col--
		}
		return next
	case UpLeft, UpRight:
		next := Coord{c.Row - 1, c.Col}
		if next.Row < mid {
			if d == UpLeft {
				next.Col--
			}
		} else if d == UpRight {
			next.Col++
		}
		return next
	}
	return c
}

// Neighbors returns the in-bounds cells adjacent to c.
func (b Board) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Directions))
	for _, d := range Directions {
		if n := b.Step(c, d); b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
