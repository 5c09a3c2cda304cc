package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// chdir changes the working directory for the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}

func TestLoad(t *testing.T) {
	t.Run("values from an env file", func(t *testing.T) {
		path := writeEnv(t, "REVERSI_MAX_WIDTH=9\nREVERSI_MIN_WIDTH=5\nREVERSI_GAMES=4\nREVERSI_LOG_LEVEL=debug\nREVERSI_MATCHUPS=capture:minimax, avoid:corners\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 9, cfg.MaxWidth)
		require.Equal(t, 5, cfg.MinWidth)
		require.Equal(t, 4, cfg.Games)
		require.Equal(t, MAX_TURNS, cfg.MaxTurns, "Unset values keep defaults")
		require.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
		require.Equal(t, []Matchup{{"capture", "minimax"}, {"avoid", "corners"}}, cfg.Matchups)
	})

	t.Run("process environment wins over the file", func(t *testing.T) {
		path := writeEnv(t, "REVERSI_GAMES=4\nREVERSI_WORKERS=2\n")
		t.Setenv("REVERSI_GAMES", "7")
		t.Setenv("REVERSI_SEED", "99")
		t.Setenv("REVERSI_OUTPUT_DIR", "out")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 7, cfg.Games)
		require.Equal(t, 2, cfg.Workers)
		require.Equal(t, uint64(99), cfg.Seed)
		require.Equal(t, "out", cfg.OutputDir)
	})

	t.Run("missing default file is fine", func(t *testing.T) {
		chdir(t, t.TempDir())

		cfg, err := Load()

		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, content := range []string{
			"REVERSI_GAMES=zero\n",
			"REVERSI_MAX_TURNS=-3\n",
			"REVERSI_SEED=x\n",
			"REVERSI_LOG_LEVEL=loud\n",
			"REVERSI_MATCHUPS=capture\n",
		} {
			_, err := Load(writeEnv(t, content))
			require.Error(t, err, content)
		}
	})
}

func TestParseMatchups(t *testing.T) {
	got, err := ParseMatchups("minimax+corners:capture")
	require.NoError(t, err)
	require.Equal(t, []Matchup{{Black: "minimax+corners", White: "capture"}}, got)
	require.Equal(t, "minimax+corners:capture", got[0].String())

	_, err = ParseMatchups("capture:")
	require.Error(t, err)
}
