package experiments

import (
	"fmt"
	"strconv"

	"reversi/experiments/metrics"
	"reversi/game"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the games of one matchup. Margins are Black minus White.
type Summary struct {
	Matchup      metrics.MatchupConfig
	Games        int
	BlackWins    int
	WhiteWins    int
	Draws        int
	Unfinished   int
	MeanMargin   float64
	StdDevMargin float64
	MeanTurns    float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%s vs %s: %d games, X %d, O %d, draws %d, margin %.2f±%.2f",
		s.Matchup.Black, s.Matchup.White, s.Games, s.BlackWins, s.WhiteWins, s.Draws, s.MeanMargin, s.StdDevMargin)
}

func Summarize(config metrics.MatchupConfig, games []metrics.GameMetric) Summary {
	s := Summary{Matchup: config, Games: len(games)}
	if len(games) == 0 {
		return s
	}

	margins := make([]float64, len(games))
	turns := make([]float64, len(games))
	for i, g := range games {
		margins[i] = float64(g.Margin())
		turns[i] = float64(g.Turns)
		switch {
		case g.Truncated:
			s.Unfinished++
		case g.Draw:
			s.Draws++
		case g.Winner == game.Black:
			s.BlackWins++
		case g.Winner == game.White:
			s.WhiteWins++
		}
	}

	s.MeanMargin = stat.Mean(margins, nil)
	s.MeanTurns = stat.Mean(turns, nil)
	if len(margins) > 1 {
		s.StdDevMargin = stat.StdDev(margins, nil)
	}
	return s
}

var summaryHeader = []string{"matchup", "black", "white", "games", "black_wins", "white_wins", "draws", "unfinished", "mean_margin", "stddev_margin", "mean_turns"}

func summaryRows(summaries []Summary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			strconv.Itoa(s.Matchup.ID),
			s.Matchup.Black,
			s.Matchup.White,
			strconv.Itoa(s.Games),
			strconv.Itoa(s.BlackWins),
			strconv.Itoa(s.WhiteWins),
			strconv.Itoa(s.Draws),
			strconv.Itoa(s.Unfinished),
			strconv.FormatFloat(s.MeanMargin, 'f', 3, 64),
			strconv.FormatFloat(s.StdDevMargin, 'f', 3, 64),
			strconv.FormatFloat(s.MeanTurns, 'f', 3, 64),
		})
	}
	return rows
}
