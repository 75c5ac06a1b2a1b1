package tiles

import (
	"testing"

	"github.com/matryer/is"
)

func TestRackCounts(t *testing.T) {
	is := is.New(t)
	r := NewRack([]Family{I, I, O, L})
	is.Equal(r.NumPieces(), 4)
	is.Equal(r.Count(I), 2)
	is.Equal(r.Count(O), 1)
	is.Equal(r.Count(Z), 0)
	is.True(!r.Empty())
}

func TestRackTakePut(t *testing.T) {
	is := is.New(t)
	r := NewRack([]Family{O})
	r.Take(O)
	is.True(r.Empty())
	is.Equal(r.Count(O), 0)
	r.Put(O)
	is.Equal(r.Count(O), 1)
	is.Equal(r.NumPieces(), 1)
}

func TestRackString(t *testing.T) {
	is := is.New(t)
	r := NewRack([]Family{Z, L, I, L})
	// tag order, not insertion order
	is.Equal(r.String(), "ILLZ")
}

func TestRackCopy(t *testing.T) {
	is := is.New(t)
	r := NewRack([]Family{T, T})
	c := r.Copy()
	r.Take(T)
	is.Equal(c.Count(T), 2)
	is.Equal(r.Count(T), 1)
}
