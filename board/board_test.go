package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestFirstOpenEmpty(t *testing.T) {
	is := is.New(t)
	b := New(4, 4)
	cell, open := b.FirstOpen()
	is.True(open)
	is.Equal(cell, 0)
}

func TestOccupyReleaseRoundTrip(t *testing.T) {
	is := is.New(t)
	b := New(4, 4)
	cells := []int{0, 1, 2, 3}
	is.True(b.IsFree(cells))

	b.Occupy(cells)
	is.True(!b.IsFree([]int{2}))
	cell, open := b.FirstOpen()
	is.True(open)
	is.Equal(cell, 4)

	b.Release(cells)
	is.True(b.IsFree(cells))
	cell, _ = b.FirstOpen()
	is.Equal(cell, 0)
}

func TestIsFreeOutOfBounds(t *testing.T) {
	is := is.New(t)
	b := New(4, 4)
	is.True(!b.IsFree([]int{-1}))
	is.True(!b.IsFree([]int{16}))
	is.True(b.IsFree([]int{15}))
}

func TestFullBoard(t *testing.T) {
	is := is.New(t)
	b := New(2, 2)
	is.True(!b.Full())
	b.Occupy([]int{0, 1, 2, 3})
	is.True(b.Full())
	_, open := b.FirstOpen()
	is.True(!open)
}

func TestMultiWordBoard(t *testing.T) {
	is := is.New(t)
	// 9x8 = 72 cells, spans two words.
	b := New(9, 8)
	is.Equal(b.Area(), 72)

	cells := make([]int, 64)
	for i := range cells {
		cells[i] = i
	}
	b.Occupy(cells)
	cell, open := b.FirstOpen()
	is.True(open)
	is.Equal(cell, 64)

	rest := make([]int, 8)
	for i := range rest {
		rest[i] = 64 + i
	}
	b.Occupy(rest)
	is.True(b.Full())

	b.Release([]int{65})
	cell, open = b.FirstOpen()
	is.True(open)
	is.Equal(cell, 65)
}

func TestExactWordBoundary(t *testing.T) {
	is := is.New(t)
	// 8x8 = exactly one word
	b := New(8, 8)
	cells := make([]int, 64)
	for i := range cells {
		cells[i] = i
	}
	b.Occupy(cells)
	is.True(b.Full())
}
