package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/sigil/config"
	"github.com/domino14/sigil/puzzles"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	var logger zerolog.Logger
	if cfg.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger

	args := cfg.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: batch [--batch-workers N] [--pretty] <puzzles.yaml>")
		os.Exit(1)
	}

	set, err := puzzles.LoadSet(args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("could not load puzzle set")
	}
	log.Info().Str("set", set.Name).Int("puzzles", len(set.Puzzles)).
		Int("workers", cfg.GetInt("batch-workers")).Msg("solving puzzle set")

	// Ctrl-C abandons the remaining puzzles.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	results, err := puzzles.SolveSet(ctx, set, cfg.GetInt("batch-workers"))
	if err != nil {
		log.Fatal().Err(err).Msg("batch solve aborted")
	}

	if cfg.GetBool("pretty") {
		for _, r := range results {
			if r.Solved() {
				fmt.Printf("%s\n%s", r.Puzzle, r.Solution.Position().Pretty())
			}
		}
	}
	fmt.Print(puzzles.Summary(results))
	log.Info().Dur("elapsed", time.Since(start)).Msg("done")
}
