// Package solver implements the backtracking exact-cover search: repeatedly
// fill the lowest open cell with every still-available piece in every
// orientation that fits, undoing on failure, until the board is covered or
// the space is exhausted.
package solver

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/domino14/sigil/board"
	"github.com/domino14/sigil/movegen"
	"github.com/domino14/sigil/tiles"
)

var (
	// ErrNoSolution is the normal "no tiling exists" outcome, not a fault.
	ErrNoSolution = errors.New("no tiling solution found")
	// ErrBadDimensions is returned for non-positive board dimensions.
	ErrBadDimensions = errors.New("board dimensions must be positive")
)

// How often (in visited nodes) to poll the context for cancellation.
const cancelCheckInterval = 256

// Solver owns one board and one rack for the duration of a single Solve
// call. It is not safe for concurrent use; solve each puzzle with its own
// Solver.
type Solver struct {
	board  *board.Board
	gen    *movegen.Generator
	rack   *tiles.Rack
	pieces []tiles.Family
	used   []bool
	stack  []movegen.Placement

	nodes uint64

	// Transposition table of exhausted (occupancy, rack) states. It only
	// memoizes failures, so the first-found solution is identical with it
	// on or off.
	transpositionsOff bool
	deadEnds          map[uint64]struct{}
	hashBuf           []byte
}

// Solution is a successful tiling: the committed placements in search
// order. Each placement carries its family, anchor and absolute cells, so a
// renderer needs no further geometry.
type Solution struct {
	Width, Height int
	Placements    []movegen.Placement
}

// Position renders the solution as a letter grid, 'A' for the first
// placement, 'B' for the second, and so on.
func (sol *Solution) Position() *board.Position {
	pos := board.NewPosition(sol.Width, sol.Height)
	for i, pl := range sol.Placements {
		pos.Mark(pl.Cells[:], byte('A'+i))
	}
	return pos
}

func (sol *Solution) String() string {
	return sol.Position().String()
}

// New creates a solver for a width x height board and the given piece
// sequence. Input order of the pieces fixes the search order.
func New(width, height int, pieces []tiles.Family) (*Solver, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	b := board.New(width, height)
	return &Solver{
		board:    b,
		gen:      movegen.NewGenerator(b),
		rack:     tiles.NewRack(pieces),
		pieces:   pieces,
		used:     make([]bool, len(pieces)),
		stack:    make([]movegen.Placement, 0, len(pieces)),
		deadEnds: make(map[uint64]struct{}),
	}, nil
}

// SetTranspositions toggles the failed-state table. On by default.
func (s *Solver) SetTranspositions(on bool) {
	s.transpositionsOff = !on
}

// Solve parses the piece string, runs the search and returns the first
// solution under the fixed exploration order, or ErrNoSolution. Invalid
// dimensions or piece letters are reported before any search begins.
func Solve(ctx context.Context, width, height int, pieces string) (*Solution, error) {
	fams, err := tiles.ParseFamilies(pieces)
	if err != nil {
		return nil, err
	}
	s, err := New(width, height, fams)
	if err != nil {
		return nil, err
	}
	return s.Solve(ctx)
}

// Solve runs the search. The context is polled between recursion steps, so
// a caller wanting a time bound can cancel mid-search.
func (s *Solver) Solve(ctx context.Context) (*Solution, error) {
	w, h := s.board.Dims()
	// Necessary area condition; mismatched inputs are a normal NoSolution,
	// not an error.
	if s.rack.NumPieces()*tiles.FamilySize != s.board.Area() {
		log.Debug().Int("pieces", s.rack.NumPieces()).Int("area", s.board.Area()).
			Msg("piece area does not match board area")
		return nil, ErrNoSolution
	}

	solved, err := s.solve(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug().Uint64("nodes", s.nodes).Int("dead-ends", len(s.deadEnds)).
		Bool("solved", solved).Msg("search done")
	if !solved {
		return nil, ErrNoSolution
	}

	sol := &Solution{Width: w, Height: h}
	sol.Placements = append(sol.Placements, s.stack...)
	return sol, nil
}

func (s *Solver) solve(ctx context.Context) (bool, error) {
	if s.nodes%cancelCheckInterval == 0 {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}
	}
	s.nodes++

	cell, open := s.board.FirstOpen()
	if !open {
		return true, nil
	}

	var key uint64
	if !s.transpositionsOff {
		key = s.stateKey()
		if _, dead := s.deadEnds[key]; dead {
			return false, nil
		}
	}

	// Identical-family siblings explore identical subtrees; try each
	// family at most once per cell.
	var triedFamilies uint8
	var candidates []movegen.Placement
	for idx, f := range s.pieces {
		if s.used[idx] || triedFamilies&(1<<f) != 0 {
			continue
		}
		triedFamilies |= 1 << f

		candidates = s.gen.Candidates(candidates[:0], f, cell)
		for _, pl := range candidates {
			pl.PieceIndex = idx
			s.board.Occupy(pl.Cells[:])
			s.rack.Take(f)
			s.used[idx] = true
			s.stack = append(s.stack, pl)

			solved, err := s.solve(ctx)
			if err != nil {
				return false, err
			}
			if solved {
				return true, nil
			}

			s.stack = s.stack[:len(s.stack)-1]
			s.used[idx] = false
			s.rack.Put(f)
			s.board.Release(pl.Cells[:])
		}
	}

	if !s.transpositionsOff {
		s.deadEnds[key] = struct{}{}
	}
	return false, nil
}

// stateKey hashes the occupancy words plus the remaining rack counts. Two
// equal keys mean the same subtree.
func (s *Solver) stateKey() uint64 {
	words := s.board.Words()
	need := len(words)*8 + tiles.NumFamilies
	if cap(s.hashBuf) < need {
		s.hashBuf = make([]byte, need)
	}
	buf := s.hashBuf[:need]
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	counts := s.rack.Counts()
	copy(buf[len(words)*8:], counts[:])
	return xxhash.Sum64(buf)
}
