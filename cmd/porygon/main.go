package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/nathanieltooley/porygon/battle"
	"github.com/nathanieltooley/porygon/internal/config"
	"github.com/nathanieltooley/porygon/internal/logging"
	"github.com/rs/zerolog/log"
)

const usage = `usage: porygon [-config path] <command> [arguments]

commands:
  calc <scenario>      damage ranges for every move of both active Pokemon
  turn <scenario>      play turns with the greedy move chooser
  infer <scenario>     narrow down the peer's hidden item, nature and EVs
  observe add|list|clear
                       manage recorded observations
`

var errUsage = errors.New("bad usage")

func main() {
	configPath := flag.String("config", config.DefaultConfigLocation(), "config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Options{Debug: cfg.Debug, LogDir: cfg.LogDir})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Bridge(logger)

	if err := run(context.Background(), cfg, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		log.Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, args []string) error {
	if len(args) < 1 {
		return errUsage
	}

	log.Info().Strs("args", args).Msg("Running command")
	switch args[0] {
	case "calc":
		return calcMain(args[1:])
	case "turn":
		return turnMain(cfg, args[1:])
	case "infer":
		return inferMain(ctx, cfg, args[1:])
	case "observe":
		return observeMain(ctx, cfg, args[1:])
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func tieBreaker(cfg config.Config, rng *rand.Rand) battle.TieBreaker {
	if cfg.TieBreak == config.TIE_BREAK_FIRST {
		return battle.FirstTieBreaker
	}
	return battle.RandomTieBreaker(rng)
}
