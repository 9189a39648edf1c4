package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chickenfoot/config"
	"chickenfoot/player"
	"chickenfoot/reporter"
	"chickenfoot/runner"
	"chickenfoot/runner/metrics"
	"chickenfoot/web"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	switch cfg.LogLevel {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if cfg.Serve {
		if err := web.NewServer().Start(cfg.Addr); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
		return
	}

	players := make([]*player.Player, len(cfg.Players))
	for i, strategy := range cfg.Players {
		if players[i], err = player.New(strategy, fmt.Sprintf("p%d", i)); err != nil {
			log.Fatal().Err(err).Msg("failed to build players")
		}
	}

	reporters := make([]reporter.Reporter, len(cfg.Reporters))
	for i, name := range cfg.Reporters {
		if reporters[i], err = reporter.New(name); err != nil {
			log.Fatal().Err(err).Msg("failed to build reporters")
		}
	}

	r := runner.New(cfg.Rounds, cfg.SetSize, cfg.StartingHandSize, players, reporters)
	if err := r.Run(); err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	if cfg.MetricsDir != "" {
		w, err := metrics.NewWriter(cfg.MetricsDir)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create metrics writer")
		}
		if err := w.WriteRoundRecords(r.Records); err != nil {
			log.Fatal().Err(err).Msg("failed to write round records")
		}
		if err := w.WriteTotals(r.Totals()); err != nil {
			log.Fatal().Err(err).Msg("failed to write totals")
		}
		log.Info().Msgf("stored results under %s", w.Dir())
	}

	fmt.Printf("Rounds: %d\n", r.RoundsPlayed)
	fmt.Println("Aggregate scores:")
	for _, total := range r.Totals() {
		fmt.Printf("   %s %10d\n", total.Player, total.Score)
	}
}
