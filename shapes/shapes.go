// Package shapes holds the static orientation catalog: for every tetromino
// family, the distinct cell-offset patterns produced by its rotations and
// reflections.
package shapes

import (
	"sort"

	"github.com/domino14/sigil/tiles"
)

// Cell is a (row, col) offset within an orientation, or an absolute board
// coordinate, depending on context.
type Cell struct {
	Row, Col int
}

// Orientation is one rotation/reflection variant of a family, normalized so
// that the minimum row and minimum column are both zero, and sorted
// row-major. The first cell is therefore always the top-left-most cell of
// the shape and has Row == 0.
type Orientation [tiles.FamilySize]Cell

// The canonical spawn shape for each family. Transform closure generates
// the rest.
var baseShapes = [tiles.NumFamilies]Orientation{
	tiles.I: {{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	tiles.O: {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	tiles.T: {{0, 0}, {0, 1}, {0, 2}, {1, 1}},
	tiles.J: {{0, 1}, {1, 1}, {2, 0}, {2, 1}},
	tiles.L: {{0, 0}, {1, 0}, {2, 0}, {2, 1}},
	tiles.S: {{0, 1}, {0, 2}, {1, 0}, {1, 1}},
	tiles.Z: {{0, 0}, {0, 1}, {1, 1}, {1, 2}},
}

var catalog [tiles.NumFamilies][]Orientation

func init() {
	for f := tiles.Family(0); f < tiles.NumFamilies; f++ {
		catalog[f] = generate(baseShapes[f])
	}
}

// Orientations returns every distinct orientation of the family, in a fixed
// canonical order (rotations of the base shape, then rotations of its
// mirror, duplicates dropped). The returned slice is shared static data and
// must not be mutated.
func Orientations(f tiles.Family) []Orientation {
	return catalog[f]
}

// NumOrientations returns the size of the family's catalog.
func NumOrientations(f tiles.Family) int {
	return len(catalog[f])
}

func generate(base Orientation) []Orientation {
	var out []Orientation
	shape := base
	for mirrored := 0; mirrored < 2; mirrored++ {
		cur := shape
		for rot := 0; rot < 4; rot++ {
			n := normalize(cur)
			if !contains(out, n) {
				out = append(out, n)
			}
			cur = rotate90(cur)
		}
		shape = mirror(shape)
	}
	return out
}

// rotate90 rotates clockwise: (r, c) -> (c, -r).
func rotate90(o Orientation) Orientation {
	var out Orientation
	for i, cell := range o {
		out[i] = Cell{Row: cell.Col, Col: -cell.Row}
	}
	return out
}

// mirror flips across the vertical axis: (r, c) -> (r, -c).
func mirror(o Orientation) Orientation {
	var out Orientation
	for i, cell := range o {
		out[i] = Cell{Row: cell.Row, Col: -cell.Col}
	}
	return out
}

func normalize(o Orientation) Orientation {
	minRow, minCol := o[0].Row, o[0].Col
	for _, cell := range o[1:] {
		if cell.Row < minRow {
			minRow = cell.Row
		}
		if cell.Col < minCol {
			minCol = cell.Col
		}
	}
	var out Orientation
	for i, cell := range o {
		out[i] = Cell{Row: cell.Row - minRow, Col: cell.Col - minCol}
	}
	sort.Slice(out[:], func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func contains(os []Orientation, o Orientation) bool {
	for _, existing := range os {
		if existing == o {
			return true
		}
	}
	return false
}
