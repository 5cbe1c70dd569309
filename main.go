package main

import (
	"errors"
	"fmt"
	"nim/agent"
	"nim/config"
	"nim/engine"
	"nim/game"
	"nim/searcher"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(cfg.LogLevel)

	depth := cfg.EffectiveDepth()
	log.Info().Int("depth", depth).Msgf("playing %s with %d red and %d blue marbles", cfg.Variant, cfg.NumRed, cfg.NumBlue)

	agents := map[game.Player]agent.Agent{
		game.Computer: agent.NewComputer(searcher.NewAlphaBeta(searcher.WithMetrics()), depth),
		game.Human:    agent.NewHuman(os.Stdin, os.Stdout),
	}
	e := engine.LocalEngine(cfg.InitialState(), agents, engine.NewConsoleReporter(os.Stdout))

	if _, err := e.Run(); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}
