package tiles

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseFamilies(t *testing.T) {
	is := is.New(t)
	fams, err := ParseFamilies("IIOL")
	is.NoErr(err)
	is.Equal(fams, []Family{I, I, O, L})
}

func TestParseFamiliesLowercase(t *testing.T) {
	is := is.New(t)
	fams, err := ParseFamilies("szjt")
	is.NoErr(err)
	is.Equal(fams, []Family{S, Z, J, T})
}

func TestParseFamiliesBadLetter(t *testing.T) {
	is := is.New(t)
	_, err := ParseFamilies("IOX")
	is.True(err != nil)
}

func TestFamiliesString(t *testing.T) {
	is := is.New(t)
	fams, err := ParseFamilies("ZLOT")
	is.NoErr(err)
	is.Equal(FamiliesString(fams), "ZLOT")
}
