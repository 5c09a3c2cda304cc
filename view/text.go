package view

import (
	"fmt"
	"io"
	"strings"

	"reversi/game"
)

// Text draws one board row per line, cells separated by spaces and shorter rows
// indented so the hexagon lines up.
func Text(b game.Board) string {
	widest := 0
	for _, row := range b {
		widest = max(widest, len(row))
	}

	var sb strings.Builder
	for _, row := range b {
		sb.WriteString(strings.Repeat(" ", widest-len(row)))
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Render writes the current board of m to w.
func Render(w io.Writer, m game.ReadOnly) error {
	if _, err := io.WriteString(w, Text(m.Board())); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}
	return nil
}
