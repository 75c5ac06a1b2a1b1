package tiles

// Rack is a machine-friendly representation of the pieces still available
// to the solver, as a per-family count array.
type Rack struct {
	counts    [NumFamilies]uint8
	numPieces uint8
}

// NewRack creates a rack holding the given pieces.
func NewRack(fams []Family) *Rack {
	r := &Rack{}
	r.Set(fams)
	return r
}

// Set resets the rack to hold exactly the given pieces.
func (r *Rack) Set(fams []Family) {
	r.Clear()
	for _, f := range fams {
		r.counts[f]++
	}
	r.numPieces = uint8(len(fams))
}

// Clear empties the rack.
func (r *Rack) Clear() {
	for i := range r.counts {
		r.counts[i] = 0
	}
	r.numPieces = 0
}

// Count returns how many pieces of the family remain.
func (r *Rack) Count(f Family) int {
	return int(r.counts[f])
}

// NumPieces returns how many pieces remain in total.
func (r *Rack) NumPieces() int {
	return int(r.numPieces)
}

// Empty is true when no pieces remain.
func (r *Rack) Empty() bool {
	return r.numPieces == 0
}

// Take removes one piece of the family. It must be present.
func (r *Rack) Take(f Family) {
	if r.counts[f] == 0 {
		panic("took a piece not on the rack")
	}
	r.counts[f]--
	r.numPieces--
}

// Put returns one piece of the family to the rack.
func (r *Rack) Put(f Family) {
	r.counts[f]++
	r.numPieces++
}

// Counts returns a copy of the per-family counts, indexed by Family.
func (r *Rack) Counts() [NumFamilies]uint8 {
	return r.counts
}

// Copy returns a deep copy of this rack.
func (r *Rack) Copy() *Rack {
	n := &Rack{}
	n.counts = r.counts
	n.numPieces = r.numPieces
	return n
}

// String returns the rack as a letter string, families in tag order.
func (r *Rack) String() string {
	bts := make([]byte, 0, r.numPieces)
	for f := Family(0); f < NumFamilies; f++ {
		for i := uint8(0); i < r.counts[f]; i++ {
			bts = append(bts, familyLetters[f])
		}
	}
	return string(bts)
}
