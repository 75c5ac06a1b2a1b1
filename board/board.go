// Package board implements the occupancy bitboard for rectangular tiling
// puzzles, plus rendering of finished positions.
package board

import (
	"math/bits"
)

const wordBits = 64

// Board is a W x H occupancy bit-vector. Cells are indexed row-major,
// index = row*W + col, top-left first. Bit set means occupied. Boards up
// to 64 cells fit in a single word; larger boards span several words under
// the same contract.
type Board struct {
	w, h  int
	words []uint64
	// lastMask masks off the bits of the final word that lie past the
	// board area.
	lastMask uint64
}

// New creates an empty board. Dimensions must be positive; the solver
// validates user input before constructing a board.
func New(w, h int) *Board {
	if w <= 0 || h <= 0 {
		panic("board dimensions must be positive")
	}
	area := w * h
	nwords := (area + wordBits - 1) / wordBits
	lastMask := ^uint64(0)
	if rem := area % wordBits; rem != 0 {
		lastMask = (uint64(1) << rem) - 1
	}
	return &Board{
		w:        w,
		h:        h,
		words:    make([]uint64, nwords),
		lastMask: lastMask,
	}
}

// Dims returns (width, height).
func (b *Board) Dims() (int, int) {
	return b.w, b.h
}

// Area returns the total cell count.
func (b *Board) Area() int {
	return b.w * b.h
}

// IsFree returns true iff every given cell is on the board and unoccupied.
func (b *Board) IsFree(cells []int) bool {
	area := b.w * b.h
	for _, c := range cells {
		if c < 0 || c >= area {
			return false
		}
		if b.words[c/wordBits]&(uint64(1)<<(c%wordBits)) != 0 {
			return false
		}
	}
	return true
}

// Occupy marks all given cells occupied. The cells must be free; occupying
// an occupied cell is an invariant breach in the caller.
func (b *Board) Occupy(cells []int) {
	for _, c := range cells {
		w, bit := c/wordBits, uint64(1)<<(c%wordBits)
		if b.words[w]&bit != 0 {
			panic("occupying an already occupied cell")
		}
		b.words[w] |= bit
	}
}

// Release clears all given cells. The cells must be occupied; they should
// be exactly the footprint of the placement being undone.
func (b *Board) Release(cells []int) {
	for _, c := range cells {
		w, bit := c/wordBits, uint64(1)<<(c%wordBits)
		if b.words[w]&bit == 0 {
			panic("releasing an unoccupied cell")
		}
		b.words[w] &^= bit
	}
}

// FirstOpen returns the lowest-index unoccupied cell, or false if the
// board is full. Always filling this cell first is the solver's key
// pruning heuristic.
func (b *Board) FirstOpen() (int, bool) {
	last := len(b.words) - 1
	for i, w := range b.words {
		if i == last {
			w |= ^b.lastMask
		}
		if inv := ^w; inv != 0 {
			return i*wordBits + bits.TrailingZeros64(inv), true
		}
	}
	return 0, false
}

// Full returns true when every cell is occupied.
func (b *Board) Full() bool {
	_, open := b.FirstOpen()
	return !open
}

// Words returns the raw occupancy words. The final word's unused high bits
// are always zero. Callers must treat the slice as read-only; the solver
// hashes it for its transposition table.
func (b *Board) Words() []uint64 {
	return b.words
}
