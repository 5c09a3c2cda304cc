package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// emptyBoard returns a hexagon of the given widths with no discs.
func emptyBoard(t *testing.T, maxWidth, minWidth int) Board {
	t.Helper()
	b, err := NewBoard(maxWidth, minWidth)
	require.NoError(t, err)
	for _, row := range b {
		for c := range row {
			row[c] = Empty
		}
	}
	return b
}

func TestNewBoard(t *testing.T) {
	t.Run("generated boards have hexagon shape and six seeds", func(t *testing.T) {
		widths := [][2]int{{11, 6}, {5, 3}, {8, 2}, {9, 6}, {12, 4}}
		for _, w := range widths {
			maxWidth, minWidth := w[0], w[1]

			b, err := NewBoard(maxWidth, minWidth)

			require.NoError(t, err)
			require.Len(t, b, 2*(maxWidth-minWidth)+1)
			require.Len(t, b[0], minWidth)
			require.Len(t, b[len(b)-1], minWidth)
			require.Len(t, b[b.Median()], maxWidth)
			for r := 1; r < len(b); r++ {
				step := len(b[r]) - len(b[r-1])
				if r <= b.Median() {
					require.Equal(t, 1, step, "Rows should grow towards the median")
				} else {
					require.Equal(t, -1, step, "Rows should shrink past the median")
				}
			}
			require.Equal(t, 3, b.Count(BlackDisc))
			require.Equal(t, 3, b.Count(WhiteDisc))
			require.Equal(t, b.Size()-6, b.Count(Empty))
		}
	})

	t.Run("default board seeds surround the centre", func(t *testing.T) {
		b := DefaultBoard()

		require.Equal(t, 11, b.Rows())
		for _, c := range []Coord{{4, 4}, {6, 4}, {5, 6}} {
			require.Equal(t, BlackDisc, b[c.Row][c.Col], "%v should hold X", c)
		}
		for _, c := range []Coord{{4, 5}, {6, 5}, {5, 4}} {
			require.Equal(t, WhiteDisc, b[c.Row][c.Col], "%v should hold O", c)
		}
		require.Equal(t, Empty, b[5][5])
	})

	t.Run("rejecting widths closer than two", func(t *testing.T) {
		for _, w := range [][2]int{{7, 6}, {6, 6}, {3, 5}, {2, 0}, {3, -1}} {
			_, err := NewBoard(w[0], w[1])

			require.ErrorIs(t, err, ErrInvalidConfiguration)
		}
	})
}

func TestBoardAccess(t *testing.T) {
	b := DefaultBoard()

	t.Run("bounds follow the row length", func(t *testing.T) {
		require.True(t, b.InBounds(Coord{0, 5}))
		require.False(t, b.InBounds(Coord{0, 6}))
		require.True(t, b.InBounds(Coord{5, 10}))
		require.False(t, b.InBounds(Coord{-1, 0}))
		require.False(t, b.InBounds(Coord{11, 0}))
		require.False(t, b.InBounds(Coord{3, -1}))
	})

	t.Run("reading and writing cells", func(t *testing.T) {
		c := b.Copy()

		require.NoError(t, c.Set(Coord{0, 0}, WhiteDisc))
		got, err := c.At(Coord{0, 0})

		require.NoError(t, err)
		require.Equal(t, WhiteDisc, got)
		_, err = c.At(Coord{0, 6})
		require.ErrorIs(t, err, ErrOutOfBounds)
		require.ErrorIs(t, c.Set(Coord{20, 0}, BlackDisc), ErrOutOfBounds)
	})

	t.Run("copies are deep", func(t *testing.T) {
		c := b.Copy()
		c[0][0] = BlackDisc

		require.Equal(t, Empty, b[0][0], "Original should not change")
		require.Nil(t, Board(nil).Copy())
	})

	t.Run("validating cell states", func(t *testing.T) {
		require.NoError(t, b.Validate())
		require.ErrorIs(t, Board(nil).Validate(), ErrInvalidArgument)
		c := b.Copy()
		c[2] = nil
		require.ErrorIs(t, c.Validate(), ErrInvalidArgument)
		c = b.Copy()
		c[1][1] = Cell(7)
		require.ErrorIs(t, c.Validate(), ErrInvalidArgument)
	})
}

func TestCorners(t *testing.T) {
	b := DefaultBoard()

	corners := b.Corners()

	require.Equal(t, []Coord{{0, 0}, {0, 5}, {5, 0}, {5, 10}, {10, 0}, {10, 5}}, corners)
	require.True(t, b.IsCorner(Coord{5, 10}))
	require.False(t, b.IsCorner(Coord{5, 5}))
}

func TestStep(t *testing.T) {
	b := DefaultBoard()

	tests := []struct {
		from Coord
		dir  Direction
		want Coord
	}{
		{Coord{5, 5}, UpLeft, Coord{4, 4}},
		{Coord{5, 5}, UpRight, Coord{4, 5}},
		{Coord{5, 5}, Left, Coord{5, 4}},
		{Coord{5, 5}, Right, Coord{5, 6}},
		{Coord{5, 5}, DownLeft, Coord{6, 4}},
		{Coord{5, 5}, DownRight, Coord{6, 5}},
		// above the median rows widen downwards
		{Coord{2, 2}, UpLeft, Coord{1, 1}},
		{Coord{2, 2}, UpRight, Coord{1, 2}},
		{Coord{2, 2}, DownLeft, Coord{3, 2}},
		{Coord{2, 2}, DownRight, Coord{3, 3}},
		{Coord{4, 3}, DownRight, Coord{5, 4}},
		// below the median rows narrow downwards
		{Coord{8, 2}, UpLeft, Coord{7, 2}},
		{Coord{8, 2}, UpRight, Coord{7, 3}},
		{Coord{8, 2}, DownLeft, Coord{9, 1}},
		{Coord{8, 2}, DownRight, Coord{9, 2}},
		{Coord{6, 4}, UpRight, Coord{5, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+" "+tt.dir.String(), func(t *testing.T) {
			require.Equal(t, tt.want, b.Step(tt.from, tt.dir))
		})
	}
}

func TestNeighbors(t *testing.T) {
	b := DefaultBoard()

	t.Run("corner cells have three neighbours", func(t *testing.T) {
		require.ElementsMatch(t, []Coord{{0, 1}, {1, 0}, {1, 1}}, b.Neighbors(Coord{0, 0}))
		require.ElementsMatch(t, []Coord{{4, 0}, {5, 1}, {6, 0}}, b.Neighbors(Coord{5, 0}))
	})

	t.Run("adjacency is symmetric", func(t *testing.T) {
		for r, row := range b {
			for c := range row {
				at := Coord{r, c}
				for _, n := range b.Neighbors(at) {
					require.Contains(t, b.Neighbors(n), at, "%v neighbours %v", at, n)
				}
			}
		}
	})

	t.Run("interior cells have six neighbours", func(t *testing.T) {
		require.Len(t, b.Neighbors(Coord{5, 5}), 6)
		require.Len(t, b.Neighbors(Coord{2, 3}), 6)
		require.Len(t, b.Neighbors(Coord{8, 3}), 6)
	})
}
