package experiments

import (
	"fmt"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/match"
	"reversi/meta"
	"reversi/player"
	"reversi/strategy"

	"github.com/rs/zerolog/log"
)

// Run plays cfg.Games games for every configured matchup, stores the records
// under cfg.OutputDir/name and returns one summary per matchup.
func Run(name string, cfg meta.Config) ([]Summary, error) {
	board, err := game.NewBoard(cfg.MaxWidth, cfg.MinWidth)
	if err != nil {
		return nil, err
	}

	configs := make([]metrics.MatchupConfig, len(cfg.Matchups))
	for i, m := range cfg.Matchups {
		configs[i] = metrics.MatchupConfig{ID: i + 1, Black: m.Black, White: m.White}
	}

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := make([]Summary, 0, len(configs))

	log.Info().Msgf("starting %s experiment...", name)

	for mi, config := range configs {
		log.Info().Msgf("starting matchup %d of %d between black=%s and white=%s...", mi+1, len(configs), config.Black, config.White)

		var games []metrics.GameMetric
		for i := 0; i < cfg.Games; i++ {
			seed := cfg.Seed + uint64(count)
			gameMetric, moveMetrics, err := runGame(config, board, cfg, seed)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			games = append(games, gameMetric)
			gameRecords = append(gameRecords, metrics.GameRecord{
				Game:       count,
				Matchup:    config.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
		}

		summary := Summarize(config, games)
		summaries = append(summaries, summary)
		log.Info().Msgf("completed matchup %d of %d: %s", mi+1, len(configs), summary)
	}

	log.Info().Msgf("completed %s experiment", name)

	if err := store(name, cfg.OutputDir, configs, gameRecords, moveRecords, summaries); err != nil {
		return summaries, err
	}
	return summaries, nil
}

func store(name, root string, configs []metrics.MatchupConfig, games []metrics.GameRecord, moves []metrics.MoveRecord, summaries []Summary) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteMatchups(configs); err != nil {
		return fmt.Errorf("failed to store matchups: %w", err)
	}
	log.Info().Msg("stored matchups")

	// Store experiment results
	if err := writer.WriteGameRecords(games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	if err := writer.WriteRows("summaries.csv", summaryHeader, summaryRows(summaries)); err != nil {
		return fmt.Errorf("failed to write summaries: %w", err)
	}
	log.Info().Msgf("stored summaries in %s", writer.Dir())
	return nil
}

// runGame plays one game between the strategies of config.
func runGame(config metrics.MatchupConfig, board game.Board, cfg meta.Config, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	options := []strategy.Option{
		strategy.WithWorkers(cfg.Workers),
		strategy.WithMetrics(),
		strategy.WithSeed(seed),
	}
	black, err := strategy.ByName(config.Black, options...)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	white, err := strategy.ByName(config.White, options...)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	gs := game.NewGameState()
	r := match.New(gs,
		player.NewRobot(game.Black, gs, black),
		player.NewRobot(game.White, gs, white),
		cfg.MaxTurns)
	return r.Run(board)
}
