package board

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestPositionString(t *testing.T) {
	is := is.New(t)
	pos := NewPosition(4, 1)
	pos.Mark([]int{0, 1, 2, 3}, 'A')
	is.Equal(pos.String(), "AAAA\n")
}

func TestPositionStringEmpty(t *testing.T) {
	is := is.New(t)
	pos := NewPosition(4, 2)
	is.Equal(pos.String(), "....\n....\n")
}

func TestPositionTwoPieces(t *testing.T) {
	is := is.New(t)
	pos := NewPosition(4, 2)
	pos.Mark([]int{0, 1, 4, 5}, 'A')
	pos.Mark([]int{2, 3, 6, 7}, 'B')
	is.Equal(pos.String(), "AABB\nAABB\n")
	is.Equal(pos.At(0, 1), byte('A'))
	is.Equal(pos.At(1, 2), byte('B'))
}

func TestPrettySinglePiece(t *testing.T) {
	is := is.New(t)
	pos := NewPosition(2, 2)
	pos.Mark([]int{0, 1, 2, 3}, 'A')
	is.Equal(pos.Pretty(), "┌───┐\n│   │\n└───┘\n")
}

func TestPrettyShadesUncovered(t *testing.T) {
	is := is.New(t)
	pos := NewPosition(2, 2)
	pretty := pos.Pretty()
	is.True(strings.ContainsRune(pretty, '░'))
	// one line per lattice row
	is.Equal(strings.Count(pretty, "\n"), 3)
}

func TestPrettyDrawsInnerBoundary(t *testing.T) {
	is := is.New(t)
	pos := NewPosition(4, 2)
	pos.Mark([]int{0, 1, 4, 5}, 'A')
	pos.Mark([]int{2, 3, 6, 7}, 'B')
	pretty := pos.Pretty()
	// the A/B boundary produces tee junctions on the outer edge
	is.True(strings.ContainsRune(pretty, '┬'))
	is.True(strings.ContainsRune(pretty, '┴'))
}
