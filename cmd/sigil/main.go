package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/sigil/config"
	"github.com/domino14/sigil/solver"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: sigil [--pretty] [--debug] <rows> <cols> <pieces>

Solves a tetromino tiling puzzle: covers a <rows> x <cols> board with the
given pieces exactly. <pieces> is a string of piece letters, e.g. "IIOL"
for two I tetrominoes, one O and one L.`)
}

func setupLogging(cfg *config.Config) {
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
}

func parsePositive(name, s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		fmt.Fprintf(os.Stderr, "error: value of <%s> must be a positive integer\n", name)
		os.Exit(1)
	}
	return v
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	setupLogging(cfg)

	args := cfg.Args()
	if len(args) != 3 {
		usage()
		os.Exit(1)
	}
	rows := parsePositive("rows", args[0])
	cols := parsePositive("cols", args[1])

	sol, err := solver.Solve(context.Background(), cols, rows, args[2])
	switch {
	case errors.Is(err, solver.ErrNoSolution):
		fmt.Println("No solution")
	case err != nil:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	case cfg.GetBool("pretty"):
		fmt.Print(sol.Position().Pretty())
	default:
		fmt.Print(sol.Position().String())
	}
}
