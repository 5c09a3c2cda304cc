package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// MatchupConfig names the strategies of one matchup.
type MatchupConfig struct {
	ID    int
	Black string
	White string
}

type GameRecord struct {
	Game    int
	Matchup int // MatchupConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.Game
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> for the files of one experiment.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchups(configs []MatchupConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Black,
			config.White,
		})
	}
	return w.write("matchups.csv", []string{"id", "black", "white"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Matchup),
			record.ID.String(),
			record.First.String(),
			outcome(record.GameMetric),
			strconv.Itoa(record.Black),
			strconv.Itoa(record.White),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Passes),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.FormatFloat(record.Evaluation, 'f', 4, 64),
			strconv.FormatFloat(record.Mobility, 'f', 4, 64),
		})
	}
	header := []string{"game", "matchup", "id", "first", "winner", "black", "white", "turns", "passes", "start_time", "end_time", "duration", "evaluation", "mobility"}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Side.String(),
			strconv.Itoa(record.Move.Row),
			strconv.Itoa(record.Move.Col),
			strconv.FormatBool(record.Pass),
			strconv.Itoa(record.Delta),
			record.Strategy,
			strconv.Itoa(record.Workers),
			strconv.Itoa(record.Candidates),
			record.Duration.String(),
		})
	}
	header := []string{"game", "step", "side", "row", "col", "pass", "delta", "strategy", "workers", "candidates", "duration"}
	return w.write("move_records.csv", header, rows)
}

// WriteRows stores arbitrary rows, e.g. summaries computed by the caller.
func (w *Writer) WriteRows(file string, header []string, rows [][]string) error {
	return w.write(file, header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}

	// Write each row
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", file, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", file, err)
	}
	return nil
}

func outcome(g GameMetric) string {
	switch {
	case g.Truncated:
		return "unfinished"
	case g.Draw:
		return "draw"
	}
	return g.Winner.String()
}
