// Package movegen enumerates legal placements: for a given piece family and
// target cell it produces every orientation that covers the target with its
// top-left-most cell, fits on the board and overlaps nothing.
package movegen

import (
	"github.com/domino14/sigil/board"
	"github.com/domino14/sigil/shapes"
	"github.com/domino14/sigil/tiles"
)

// Placement is a committed or candidate piece position: which input piece,
// which catalog orientation, and the absolute board cells it covers. Anchor
// is the board cell aligned to the orientation's (0,0) offset.
type Placement struct {
	PieceIndex  int
	Family      tiles.Family
	Orientation int
	Anchor      int
	Cells       [tiles.FamilySize]int
}

// Generator enumerates placements on one board. It never mutates the board.
type Generator struct {
	board *board.Board
}

// NewGenerator creates a generator bound to the given board.
func NewGenerator(b *board.Board) *Generator {
	return &Generator{board: b}
}

// Candidates appends to dst, in catalog order, every placement of the
// family whose orientation's top-left-most cell lands on target and whose
// full footprint is in-bounds and unoccupied. PieceIndex is left zero for
// the caller to fill in.
func (g *Generator) Candidates(dst []Placement, f tiles.Family, target int) []Placement {
	w, h := g.board.Dims()
	targetRow, targetCol := target/w, target%w

	for oi, o := range shapes.Orientations(f) {
		// o[0] is the top-left-most cell; anchoring it on the target
		// shifts the whole shape left by o[0].Col.
		anchorCol := targetCol - o[0].Col

		var cells [tiles.FamilySize]int
		fits := true
		for i, off := range o {
			row, col := targetRow+off.Row, anchorCol+off.Col
			if row >= h || col < 0 || col >= w {
				fits = false
				break
			}
			cells[i] = row*w + col
		}
		if !fits || !g.board.IsFree(cells[:]) {
			continue
		}
		dst = append(dst, Placement{
			Family:      f,
			Orientation: oi,
			Anchor:      targetRow*w + anchorCol,
			Cells:       cells,
		})
	}
	return dst
}
