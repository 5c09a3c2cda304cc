package meta

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Matchup pairs the strategy names playing Black and White.
type Matchup struct {
	Black string
	White string
}

func (m Matchup) String() string {
	return m.Black + ":" + m.White
}

type Config struct {
	MaxWidth  int
	MinWidth  int
	MaxTurns  int
	Games     int
	Workers   int
	Seed      uint64
	OutputDir string
	LogLevel  zerolog.Level
	Matchups  []Matchup
}

var DefaultMatchups = []Matchup{
	{Black: "capture", White: "minimax"},
	{Black: "minimax", White: "capture"},
	{Black: "corners+capture", White: "avoid+capture"},
	{Black: "minimax+corners", White: "capture"},
	{Black: "random", White: "capture"},
}

func Default() Config {
	return Config{
		MaxWidth:  MAX_WIDTH,
		MinWidth:  MIN_WIDTH,
		MaxTurns:  MAX_TURNS,
		Games:     GAMES,
		Workers:   GO_ROUTINES,
		Seed:      SEED,
		OutputDir: OUTPUT_DIR,
		LogLevel:  zerolog.InfoLevel,
		Matchups:  append([]Matchup(nil), DefaultMatchups...),
	}
}

// Load starts from Default and applies REVERSI_* variables from the given env
// files, then from the process environment, which wins. Without files an
// optional .env in the working directory is read.
func Load(files ...string) (Config, error) {
	explicit := len(files) > 0
	if !explicit {
		files = []string{".env"}
	}
	values, err := godotenv.Read(files...)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read env file: %w", err)
		}
		values = map[string]string{}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}

	cfg := Default()
	ints := []struct {
		key string
		dst *int
	}{
		{"REVERSI_MAX_WIDTH", &cfg.MaxWidth},
		{"REVERSI_MIN_WIDTH", &cfg.MinWidth},
		{"REVERSI_MAX_TURNS", &cfg.MaxTurns},
		{"REVERSI_GAMES", &cfg.Games},
		{"REVERSI_WORKERS", &cfg.Workers},
	}
	for _, v := range ints {
		s, ok := lookup(v.key)
		if !ok || s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive integer, got %q", v.key, s)
		}
		*v.dst = n
	}

	if s, ok := lookup("REVERSI_SEED"); ok && s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("REVERSI_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if s, ok := lookup("REVERSI_OUTPUT_DIR"); ok && s != "" {
		cfg.OutputDir = s
	}
	if s, ok := lookup("REVERSI_LOG_LEVEL"); ok && s != "" {
		level, err := zerolog.ParseLevel(s)
		if err != nil {
			return Config{}, fmt.Errorf("REVERSI_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}
	if s, ok := lookup("REVERSI_MATCHUPS"); ok && s != "" {
		matchups, err := ParseMatchups(s)
		if err != nil {
			return Config{}, err
		}
		cfg.Matchups = matchups
	}

	return cfg, nil
}

// ParseMatchups reads comma separated "black:white" pairs.
func ParseMatchups(s string) ([]Matchup, error) {
	var out []Matchup
	for _, pair := range strings.Split(s, ",") {
		black, white, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || black == "" || white == "" {
			return nil, fmt.Errorf("matchup %q is not black:white", pair)
		}
		out = append(out, Matchup{Black: black, White: white})
	}
	return out, nil
}
