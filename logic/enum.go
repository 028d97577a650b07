package logic

import (
	"errors"
)

// Variant is one named alternative of an Enum, bound to its pattern.
type Variant struct {
	Name    string
	Pattern Pattern
}

// Enum is a closed, ordered set of variants over words of one width.
// Declaration order is significant: Decode returns the first match, so
// earlier variants win when patterns overlap.
type Enum struct {
	Name     string
	Width    int
	Variants []Variant
}

// NewEnum validates and creates an enum. Every variant pattern must have
// the enum's width, and no two exact patterns may collide.
func NewEnum(name string, width int, variants ...Variant) (e *Enum, err error) {
	for n, v := range variants {
		if v.Pattern.Width != width {
			err = errors.Join(ErrWidthMismatch, ErrEnumVariant{name, v.Name})
			return
		}
		for _, prior := range variants[:n] {
			if v.Pattern.Exact() && prior.Pattern.Exact() && v.Pattern == prior.Pattern {
				err = errors.Join(ErrPatternCollision, ErrEnumVariant{name, v.Name})
				return
			}
		}
	}

	e = &Enum{
		Name:     name,
		Width:    width,
		Variants: variants,
	}

	return
}

// MustEnum is NewEnum for variant tables known good at compile time.
func MustEnum(name string, width int, variants ...Variant) (e *Enum) {
	e, err := NewEnum(name, width, variants...)
	if err != nil {
		panic(err)
	}

	return
}

// Decode returns the index of the first variant whose pattern matches the
// word. It fails only when no variant matches; declaration order breaks
// ties between overlapping patterns.
func (e *Enum) Decode(w Word) (index int, err error) {
	if w.Width != e.Width {
		err = errors.Join(ErrUndecodable, ErrWidthMismatch)
		return
	}

	for n, v := range e.Variants {
		if v.Pattern.Matches(w) {
			index = n
			return
		}
	}

	err = errors.Join(ErrUndecodable, ErrEnumWord{e.Name, w})

	return
}

// Encode returns the word of a wildcard-free variant. It is the inverse
// of Decode for such variants.
func (e *Enum) Encode(index int) (w Word, err error) {
	if index < 0 || index >= len(e.Variants) {
		err = ErrEnumIndex(index)
		return
	}

	w, err = e.Variants[index].Pattern.Word()

	return
}

// CheckCases verifies that a match over the enum covers every variant.
// A match with a default arm covers everything; otherwise every variant
// index must appear. The check runs when a block is registered, never
// during evaluation.
func (e *Enum) CheckCases(def bool, indices ...int) (err error) {
	if def {
		return
	}

	for n, v := range e.Variants {
		covered := false
		for _, index := range indices {
			if index == n {
				covered = true
				break
			}
		}
		if !covered {
			err = errors.Join(ErrMissingCase, ErrEnumVariant{e.Name, v.Name})
			return
		}
	}

	return
}
