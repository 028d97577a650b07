package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testEnum() *Enum {
	return MustEnum("quad", 2,
		Variant{Name: "zero", Pattern: MustPattern("__")},
		Variant{Name: "one", Pattern: MustPattern("_@")},
		Variant{Name: "two", Pattern: MustPattern("@_")},
		Variant{Name: "three", Pattern: MustPattern("@@")},
	)
}

func TestNewEnum(t *testing.T) {
	assert := assert.New(t)

	_, err := NewEnum("bad", 2,
		Variant{Name: "a", Pattern: MustPattern("_@")},
		Variant{Name: "b", Pattern: MustPattern("_@")},
	)
	assert.ErrorIs(err, ErrPatternCollision)

	_, err = NewEnum("bad", 2,
		Variant{Name: "a", Pattern: MustPattern("_@_")},
	)
	assert.ErrorIs(err, ErrWidthMismatch)

	// Overlapping wildcard patterns are legal; order disambiguates.
	_, err = NewEnum("ok", 2,
		Variant{Name: "a", Pattern: MustPattern("_@")},
		Variant{Name: "b", Pattern: MustPattern("??")},
	)
	assert.NoError(err)
}

func TestEnumDecode(t *testing.T) {
	assert := assert.New(t)

	e := testEnum()
	for n := range e.Variants {
		w, err := e.Encode(n)
		assert.NoError(err)

		index, err := e.Decode(w)
		assert.NoError(err)
		assert.Equal(n, index, e.Variants[n].Name)
	}

	_, err := e.Decode(NewWord(3, 0))
	assert.ErrorIs(err, ErrUndecodable)

	partial := MustEnum("partial", 2,
		Variant{Name: "zero", Pattern: MustPattern("__")},
	)
	_, err = partial.Decode(NewWord(2, 0b10))
	assert.ErrorIs(err, ErrUndecodable)
}

func TestEnumDecodeOrder(t *testing.T) {
	assert := assert.New(t)

	// First match wins: the wildcard variant shadows everything after it.
	e := MustEnum("shadow", 2,
		Variant{Name: "low", Pattern: MustPattern("_?")},
		Variant{Name: "any", Pattern: MustPattern("??")},
	)

	index, err := e.Decode(NewWord(2, 0b01))
	assert.NoError(err)
	assert.Equal(0, index)

	index, err = e.Decode(NewWord(2, 0b10))
	assert.NoError(err)
	assert.Equal(1, index)
}

func TestEnumEncode(t *testing.T) {
	assert := assert.New(t)

	e := MustEnum("wild", 2,
		Variant{Name: "any", Pattern: MustPattern("??")},
	)

	_, err := e.Encode(0)
	assert.ErrorIs(err, ErrPatternWild)

	_, err = e.Encode(1)
	assert.ErrorIs(err, ErrEnumIndex(1))
}

func TestEnumCheckCases(t *testing.T) {
	assert := assert.New(t)

	e := testEnum()

	assert.NoError(e.CheckCases(false, 0, 1, 2, 3))
	assert.NoError(e.CheckCases(true, 0, 1))

	err := e.CheckCases(false, 0, 1, 3)
	assert.ErrorIs(err, ErrMissingCase)
	assert.ErrorContains(err, "quad.two")
}
