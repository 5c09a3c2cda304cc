package main

import (
	"fmt"
	"os"

	"reversi/experiments"
	"reversi/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := meta.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	summaries, err := experiments.Run("strategies", cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	fmt.Printf("Finished %d matchups on a %d/%d board:\n", len(summaries), cfg.MaxWidth, cfg.MinWidth)
	for _, s := range summaries {
		fmt.Println(s)
	}
}
