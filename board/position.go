package board

import "strings"

// Position is a rendered tiling: one marker byte per cell, row-major. The
// placements of a solution get markers 'A', 'B', ... in placement order; an
// uncovered cell is '.'.
type Position struct {
	w, h    int
	squares []byte
}

// NewPosition creates an all-empty position for a w x h board.
func NewPosition(w, h int) *Position {
	squares := make([]byte, w*h)
	for i := range squares {
		squares[i] = '.'
	}
	return &Position{w: w, h: h, squares: squares}
}

// Mark writes the marker into every given cell.
func (p *Position) Mark(cells []int, marker byte) {
	for _, c := range cells {
		p.squares[c] = marker
	}
}

// At returns the marker at (row, col).
func (p *Position) At(row, col int) byte {
	return p.squares[row*p.w+col]
}

// String renders the position one row per line. Cells covered by the same
// piece share a letter.
func (p *Position) String() string {
	var sb strings.Builder
	for row := 0; row < p.h; row++ {
		sb.Write(p.squares[row*p.w : (row+1)*p.w])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Box-drawing characters indexed by a bitmask of which of the four edge
// directions (up=1, down=2, left=4, right=8) cross a piece boundary at a
// lattice point.
var boxChars = [16]rune{
	' ', '?', '?', '│',
	'?', '┘', '┐', '┤',
	'?', '└', '┌', '├',
	'─', '┴', '┬', '┼',
}

// Pretty renders the position with box-drawing characters outlining each
// piece. Uncovered cells show as shaded blocks.
func (p *Position) Pretty() string {
	// Look up a marker on a doubled-width version of the grid, so a cell
	// is two columns wide and borders land on odd lattice points. Zero
	// means off the board.
	get := func(row, col int) byte {
		if row < 0 || row >= p.h || col < 0 || col >= 2*p.w {
			return 0
		}
		return p.squares[row*p.w+col/2]
	}

	var sb strings.Builder
	for row := 0; row <= p.h; row++ {
		for col := 0; col <= 2*p.w; col++ {
			topLeft := get(row-1, col-1)
			topRight := get(row-1, col)
			bottomLeft := get(row, col-1)
			bottomRight := get(row, col)

			idx := 0
			if topLeft != topRight {
				idx |= 1
			}
			if bottomLeft != bottomRight {
				idx |= 2
			}
			if topLeft != bottomLeft {
				idx |= 4
			}
			if topRight != bottomRight {
				idx |= 8
			}

			c := boxChars[idx]
			if idx == 0 && bottomRight == '.' {
				c = '░'
			}
			sb.WriteRune(c)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
