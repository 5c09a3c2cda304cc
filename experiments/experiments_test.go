package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/strategy"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	config := metrics.MatchupConfig{ID: 1, Black: "capture", White: "minimax"}

	t.Run("counts outcomes and margin spread", func(t *testing.T) {
		games := []metrics.GameMetric{
			{Winner: game.Black, Black: 12, White: 10, Turns: 20},
			{Winner: game.White, Black: 10, White: 12, Turns: 30},
			{Winner: game.Black, Black: 14, White: 10, Turns: 40},
			{Draw: true, Black: 11, White: 11, Turns: 10},
			{Truncated: true, Black: 5, White: 5, Turns: 300},
		}

		s := Summarize(config, games)

		require.Equal(t, 5, s.Games)
		require.Equal(t, 2, s.BlackWins)
		require.Equal(t, 1, s.WhiteWins)
		require.Equal(t, 1, s.Draws)
		require.Equal(t, 1, s.Unfinished)
		require.InDelta(t, 0.8, s.MeanMargin, 1e-9)
		// margins 2, -2, 4, 0, 0
		require.InDelta(t, 2.2803508, s.StdDevMargin, 1e-6)
		require.InDelta(t, 80.0, s.MeanTurns, 1e-9)
		require.Contains(t, s.String(), "capture vs minimax")
	})

	t.Run("single and empty matchups", func(t *testing.T) {
		s := Summarize(config, []metrics.GameMetric{{Winner: game.White, Black: 1, White: 4}})
		require.Equal(t, -3.0, s.MeanMargin)
		require.Equal(t, 0.0, s.StdDevMargin)

		s = Summarize(config, nil)
		require.Equal(t, 0, s.Games)
	})
}

func TestRun(t *testing.T) {
	t.Run("plays every matchup and stores the records", func(t *testing.T) {
		cfg := meta.Default()
		cfg.MaxWidth, cfg.MinWidth = 5, 3
		cfg.Games = 2
		cfg.Workers = 2
		cfg.OutputDir = t.TempDir()
		cfg.Matchups = []meta.Matchup{{Black: "capture", White: "minimax"}, {Black: "random", White: "corners+capture"}}

		summaries, err := Run("test", cfg)

		require.NoError(t, err)
		require.Len(t, summaries, 2)
		for _, s := range summaries {
			require.Equal(t, 2, s.Games)
			require.Equal(t, 2, s.BlackWins+s.WhiteWins+s.Draws+s.Unfinished)
		}
		runs, err := os.ReadDir(filepath.Join(cfg.OutputDir, "test"))
		require.NoError(t, err)
		require.Len(t, runs, 1)
		dir := filepath.Join(cfg.OutputDir, "test", runs[0].Name())
		for _, file := range []string{"matchups.csv", "game_records.csv", "move_records.csv", "summaries.csv"} {
			require.FileExists(t, filepath.Join(dir, file))
		}
	})

	t.Run("unknown strategies", func(t *testing.T) {
		cfg := meta.Default()
		cfg.Games = 1
		cfg.OutputDir = t.TempDir()
		cfg.Matchups = []meta.Matchup{{Black: "capture", White: "bogus"}}

		_, err := Run("test", cfg)

		require.ErrorIs(t, err, strategy.ErrUnknownStrategy)
	})

	t.Run("invalid board widths", func(t *testing.T) {
		cfg := meta.Default()
		cfg.MaxWidth, cfg.MinWidth = 6, 5

		_, err := Run("test", cfg)

		require.ErrorIs(t, err, game.ErrInvalidConfiguration)
	})
}
