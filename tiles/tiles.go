// Package tiles defines the tetromino families and the rack of pieces
// available to a single solve.
package tiles

import (
	"fmt"
	"strings"
)

// Family is a one-letter tetromino tag. The seven tags follow the usual
// naming for tetrominoes (https://en.wikipedia.org/wiki/Tetromino).
type Family uint8

const (
	I Family = iota
	O
	T
	J
	L
	S
	Z

	NumFamilies = 7
)

// FamilySize is the number of cells in every piece. All pieces here are
// tetrominoes.
const FamilySize = 4

var familyLetters = [NumFamilies]byte{'I', 'O', 'T', 'J', 'L', 'S', 'Z'}

func (f Family) String() string {
	if f >= NumFamilies {
		return "?"
	}
	return string(familyLetters[f])
}

// ParseFamily converts a single letter (either case) to a Family.
func ParseFamily(r rune) (Family, error) {
	switch r {
	case 'I', 'i':
		return I, nil
	case 'O', 'o':
		return O, nil
	case 'T', 't':
		return T, nil
	case 'J', 'j':
		return J, nil
	case 'L', 'l':
		return L, nil
	case 'S', 's':
		return S, nil
	case 'Z', 'z':
		return Z, nil
	}
	return 0, fmt.Errorf("unrecognized piece letter %q; must be one of I, O, T, J, L, S, Z", r)
}

// ParseFamilies converts a piece string such as "IIOL" into an ordered
// list of families. Order is preserved; it determines search order later.
func ParseFamilies(s string) ([]Family, error) {
	fams := make([]Family, 0, len(s))
	for _, r := range s {
		f, err := ParseFamily(r)
		if err != nil {
			return nil, err
		}
		fams = append(fams, f)
	}
	return fams, nil
}

// FamiliesString renders a list of families back into its letter string.
func FamiliesString(fams []Family) string {
	var sb strings.Builder
	for _, f := range fams {
		sb.WriteString(f.String())
	}
	return sb.String()
}
