package puzzles

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/domino14/sigil/board"
	"github.com/domino14/sigil/movegen"
	"github.com/domino14/sigil/tiles"
)

// Generate produces a piece string that is guaranteed to tile a rows x cols
// board, by actually tiling the board with randomly chosen pieces. Any
// rectangle whose area is a multiple of four is tileable, so this only
// fails on bad dimensions. Pass a nil rng to use a fresh random source.
func Generate(rows, cols int, rng *frand.RNG) (string, error) {
	if rows <= 0 || cols <= 0 {
		return "", fmt.Errorf("dimensions must be positive, got %dx%d", rows, cols)
	}
	if rows*cols%tiles.FamilySize != 0 {
		return "", fmt.Errorf("a %dx%d board (%d cells) cannot be tiled by tetrominoes",
			rows, cols, rows*cols)
	}
	if rng == nil {
		rng = frand.New()
	}

	b := board.New(cols, rows)
	gen := movegen.NewGenerator(b)
	var placed []tiles.Family
	if !randomTile(b, gen, rng, &placed) {
		// Unreachable for valid dimensions; see above.
		return "", fmt.Errorf("failed to tile a %dx%d board", rows, cols)
	}
	return tiles.FamiliesString(placed), nil
}

func randomTile(b *board.Board, gen *movegen.Generator, rng *frand.RNG, placed *[]tiles.Family) bool {
	cell, open := b.FirstOpen()
	if !open {
		return true
	}

	var candidates []movegen.Placement
	for f := tiles.Family(0); f < tiles.NumFamilies; f++ {
		candidates = gen.Candidates(candidates, f, cell)
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, pl := range candidates {
		b.Occupy(pl.Cells[:])
		*placed = append(*placed, pl.Family)
		if randomTile(b, gen, rng, placed) {
			return true
		}
		*placed = (*placed)[:len(*placed)-1]
		b.Release(pl.Cells[:])
	}
	return false
}
