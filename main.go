package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"tictacpro/catalog"
	"tictacpro/communication/server"
	"tictacpro/experiments"
	"tictacpro/game"
	"tictacpro/gamemaster"
	"tictacpro/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	mode := flag.String("mode", "simulate", "simulate or serve")
	sessions := flag.Int("sessions", meta.SESSIONS, "Number of simulated sessions")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of concurrent sessions")
	agent := flag.String("agent", experiments.RandomAgent, "Automated player: random or greedy")
	seed := flag.Uint64("seed", 0, "Base seed, overrides the config when set")
	addr := flag.String("addr", ":8080", "Listen address in serve mode")
	out := flag.String("out", "", "Output directory for simulation records")
	level := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	cfg := meta.Default()
	if *configPath != "" {
		cfg, err = meta.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	switch *mode {
	case "simulate":
		run, err := experiments.Run(cfg, *sessions, *goroutines, *out, experiments.WithAgent(*agent))
		if err != nil {
			log.Fatal().Err(err).Msg("simulation failed")
		}
		fmt.Printf("%d sessions, %d player moves, %d opponent moves, %d abilities in %s\n",
			run.Sessions, run.PlayerMoves, run.OpponentMoves, run.Abilities, run.Duration)
	case "serve":
		if err := serve(cfg, *addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func serve(cfg meta.Config, addr string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	b, err := cfg.Board()
	if err != nil {
		return err
	}
	e, err := game.NewEngine(b, catalog.Default(), game.WithBasePoints(cfg.BasePoints), game.WithLineCap(cfg.LineCap))
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gmCfg := gamemaster.Config{MaxLevels: cfg.MaxLevels, OpponentDelay: cfg.OpponentDelay}
	return server.NewServer(e, gmCfg, seed).Start(addr)
}
