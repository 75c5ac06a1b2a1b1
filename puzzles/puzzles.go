// Package puzzles deals in collections of tiling puzzles: loading sets from
// YAML files, solving whole sets in parallel, and generating random solvable
// puzzles.
package puzzles

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/domino14/sigil/solver"
)

// Puzzle is one board-plus-pieces problem.
type Puzzle struct {
	Name   string `yaml:"name"`
	Rows   int    `yaml:"rows"`
	Cols   int    `yaml:"cols"`
	Pieces string `yaml:"pieces"`
}

func (p Puzzle) String() string {
	return fmt.Sprintf("%s (%dx%d %s)", p.Name, p.Rows, p.Cols, p.Pieces)
}

// Set is a named collection of puzzles, as stored in a puzzle file.
type Set struct {
	Name    string   `yaml:"name"`
	Puzzles []Puzzle `yaml:"puzzles"`
}

// LoadSet reads a YAML puzzle set from a file.
func LoadSet(path string) (*Set, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	set := &Set{}
	if err := yaml.Unmarshal(bts, set); err != nil {
		return nil, fmt.Errorf("parsing puzzle set %s: %w", path, err)
	}
	return set, nil
}

// Result is the outcome of solving one puzzle of a set. Solution is nil
// when no tiling exists; Err is set only for invalid puzzles.
type Result struct {
	Puzzle   Puzzle
	Solution *solver.Solution
	Err      error
	Elapsed  time.Duration
}

// Solved returns true if a tiling was found.
func (r Result) Solved() bool {
	return r.Solution != nil
}

// SolveSet solves every puzzle in the set, up to workers puzzles at a time.
// Each puzzle gets its own independent Solver, so no synchronization is
// needed beyond the result slots. Results keep the set's order. The only
// error returned is context cancellation; per-puzzle failures land in the
// results.
func SolveSet(ctx context.Context, set *Set, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(set.Puzzles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range set.Puzzles {
		i, p := i, p
		g.Go(func() error {
			start := time.Now()
			sol, err := solver.Solve(ctx, p.Cols, p.Rows, p.Pieces)
			res := Result{Puzzle: p, Elapsed: time.Since(start)}
			switch {
			case err == nil:
				res.Solution = sol
			case errors.Is(err, solver.ErrNoSolution):
				// normal outcome, nothing to record
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				return err
			default:
				res.Err = err
			}
			results[i] = res
			log.Debug().Str("puzzle", p.Name).Bool("solved", res.Solved()).
				Dur("elapsed", res.Elapsed).Msg("puzzle done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary renders a one-line-per-puzzle report plus totals.
func Summary(results []Result) string {
	var sb strings.Builder
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(&sb, "%-40s invalid: %v\n", r.Puzzle, r.Err)
		case r.Solved():
			fmt.Fprintf(&sb, "%-40s solved in %v\n", r.Puzzle, r.Elapsed)
		default:
			fmt.Fprintf(&sb, "%-40s no solution (%v)\n", r.Puzzle, r.Elapsed)
		}
	}
	solved := lo.CountBy(results, Result.Solved)
	fmt.Fprintf(&sb, "%d/%d solved\n", solved, len(results))
	return sb.String()
}
