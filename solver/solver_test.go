package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/sigil/tiles"
)

// exactCover asserts that the union of all placement cells is exactly every
// board cell once.
func exactCover(t *testing.T, sol *Solution) {
	t.Helper()
	covered := make([]int, sol.Width*sol.Height)
	for _, pl := range sol.Placements {
		for _, c := range pl.Cells {
			assert.GreaterOrEqual(t, c, 0)
			assert.Less(t, c, len(covered))
			covered[c]++
		}
	}
	for cell, n := range covered {
		assert.Equal(t, 1, n, "cell %d covered %d times", cell, n)
	}
}

func TestSolveSingleSquarePiece(t *testing.T) {
	is := is.New(t)
	sol, err := Solve(context.Background(), 2, 2, "O")
	is.NoErr(err)
	is.Equal(len(sol.Placements), 1)
	is.Equal(sol.Position().String(), "AA\nAA\n")
	exactCover(t, sol)
}

func TestSolveSingleRow(t *testing.T) {
	is := is.New(t)
	sol, err := Solve(context.Background(), 4, 1, "I")
	is.NoErr(err)
	is.Equal(sol.Position().String(), "AAAA\n")
}

func TestSolveFourByFour(t *testing.T) {
	is := is.New(t)
	sol, err := Solve(context.Background(), 4, 4, "LLZZ")
	is.NoErr(err)
	is.Equal(len(sol.Placements), 4)
	exactCover(t, sol)
}

func TestAreaMismatchIsNoSolution(t *testing.T) {
	is := is.New(t)
	_, err := Solve(context.Background(), 4, 4, "LLL")
	is.True(errors.Is(err, ErrNoSolution))
}

func TestOddAreaIsNoSolution(t *testing.T) {
	is := is.New(t)
	// 9 cells can never be covered by 4-cell pieces
	_, err := Solve(context.Background(), 3, 3, "TT")
	is.True(errors.Is(err, ErrNoSolution))
}

func TestMatchingAreaCanStillFail(t *testing.T) {
	is := is.New(t)
	// two S pieces have the right area for 2x4 but cannot tile it
	_, err := Solve(context.Background(), 4, 2, "SS")
	is.True(errors.Is(err, ErrNoSolution))
}

func TestInvalidDimensions(t *testing.T) {
	is := is.New(t)
	_, err := Solve(context.Background(), 0, 4, "I")
	is.True(errors.Is(err, ErrBadDimensions))
	_, err = Solve(context.Background(), 4, -1, "I")
	is.True(errors.Is(err, ErrBadDimensions))
}

func TestInvalidPieceLetter(t *testing.T) {
	is := is.New(t)
	_, err := Solve(context.Background(), 2, 2, "Q")
	is.True(err != nil)
	is.True(!errors.Is(err, ErrNoSolution))
}

func TestDeterminism(t *testing.T) {
	is := is.New(t)
	first, err := Solve(context.Background(), 4, 4, "LLZZ")
	is.NoErr(err)
	second, err := Solve(context.Background(), 4, 4, "LLZZ")
	is.NoErr(err)
	is.Equal(first.Placements, second.Placements)
}

func TestTranspositionsDoNotChangeResult(t *testing.T) {
	is := is.New(t)
	fams, err := tiles.ParseFamilies("LLZZ")
	is.NoErr(err)

	withTT, err := New(4, 4, fams)
	is.NoErr(err)
	solTT, err := withTT.Solve(context.Background())
	is.NoErr(err)

	withoutTT, err := New(4, 4, fams)
	is.NoErr(err)
	withoutTT.SetTranspositions(false)
	solPlain, err := withoutTT.Solve(context.Background())
	is.NoErr(err)

	is.Equal(solTT.Placements, solPlain.Placements)
}

func TestCancellation(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Solve(ctx, 4, 4, "LLZZ")
	is.True(errors.Is(err, context.Canceled))
}

func TestMultiWordBoard(t *testing.T) {
	is := is.New(t)
	// 10x8 = 80 cells, two occupancy words
	pieces := ""
	for i := 0; i < 20; i++ {
		pieces += "O"
	}
	sol, err := Solve(context.Background(), 10, 8, pieces)
	is.NoErr(err)
	is.Equal(len(sol.Placements), 20)
	exactCover(t, sol)
}

func TestSolutionExposesGeometry(t *testing.T) {
	is := is.New(t)
	sol, err := Solve(context.Background(), 2, 2, "O")
	is.NoErr(err)
	pl := sol.Placements[0]
	is.Equal(pl.Family, tiles.O)
	is.Equal(pl.Anchor, 0)
	is.Equal(pl.Cells, [4]int{0, 1, 2, 3})
	is.Equal(pl.PieceIndex, 0)
}
