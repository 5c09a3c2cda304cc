package game

import "fmt"

// Line is the run of occupied cells met when walking away from a cell in one direction.
type Line struct {
	Direction  Direction
	Cells      []Coord
	Capturable bool
}

// Scan walks from `from` in direction d, collecting occupied cells until an empty
// cell or the edge of the board. The run is capturable when its last cell is one
// of mover's discs and it holds at least one opponent disc.
func (b Board) Scan(from Coord, d Direction, mover Side) Line {
	line := Line{Direction: d}
	opponent := false
	for c := b.Step(from, d); b.InBounds(c); c = b.Step(c, d) {
		cell := b[c.Row][c.Col]
		if cell == Empty {
			break
		}
		if owner, _ := cell.Side(); owner != mover {
			opponent = true
		}
		line.Cells = append(line.Cells, c)
	}
	if n := len(line.Cells); n > 0 && opponent {
		last := line.Cells[n-1]
		line.Capturable = b[last.Row][last.Col] == mover.Disc()
	}
	return line
}

// Captures returns every cell flipped by mover playing at c, across all capturable directions.
func (b Board) Captures(c Coord, mover Side) []Coord {
	var out []Coord
	for _, d := range Directions {
		if line := b.Scan(c, d, mover); line.Capturable {
			out = append(out, line.Cells...)
		}
	}
	return out
}

// IsLegal reports whether c is an empty in-bounds cell with at least one capturable line for mover.
func (b Board) IsLegal(c Coord, mover Side) bool {
	if !b.InBounds(c) || b[c.Row][c.Col] != Empty {
		return false
	}
	for _, d := range Directions {
		if b.Scan(c, d, mover).Capturable {
			return true
		}
	}
	return false
}

// Apply places mover's disc at c and flips every captured cell. It returns the
// cells that changed owner, excluding c itself.
func (b Board) Apply(c Coord, mover Side) ([]Coord, error) {
	if !b.InBounds(c) {
		return nil, fmt.Errorf("cell %v: %w", c, ErrOutOfBounds)
	}
	if !b.IsLegal(c, mover) {
		return nil, fmt.Errorf("%v at %v: %w", mover, c, ErrIllegalMove)
	}
	// Lines in different directions never share cells, so collect before flipping.
	captured := b.Captures(c, mover)
	disc := mover.Disc()
	b[c.Row][c.Col] = disc
	flipped := make([]Coord, 0, len(captured))
	for _, f := range captured {
		if b[f.Row][f.Col] != disc {
			b[f.Row][f.Col] = disc
			flipped = append(flipped, f)
		}
	}
	return flipped, nil
}

// LegalMoves lists mover's legal cells in row-major order.
func (b Board) LegalMoves(mover Side) []Coord {
	var out []Coord
	for r, row := range b {
		for c := range row {
			if at := (Coord{r, c}); b.IsLegal(at, mover) {
				out = append(out, at)
			}
		}
	}
	return out
}

func (b Board) HasLegalMove(mover Side) bool {
	for r, row := range b {
		for c := range row {
			if b.IsLegal(Coord{r, c}, mover) {
				return true
			}
		}
	}
	return false
}
