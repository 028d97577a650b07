package logic

import (
	"errors"

	"github.com/ezrec/kror/translate"
)

var f = translate.From

var (
	// Pattern errors
	ErrPatternWidth = errors.New(f("pattern too wide"))
	ErrPatternWild  = errors.New(f("wildcard pattern has no value"))

	// Enum definition errors
	ErrWidthMismatch    = errors.New(f("width mismatch"))
	ErrPatternCollision = errors.New(f("pattern collision"))
	ErrMissingCase      = errors.New(f("missing case"))

	// Decode errors
	ErrUndecodable = errors.New(f("undecodable"))
)

type ErrPatternBit rune

func (e ErrPatternBit) Error() string {
	return f("'%c' is not a pattern bit", rune(e))
}

type ErrEnumVariant struct {
	Enum    string
	Variant string
}

func (e ErrEnumVariant) Error() string {
	return f("%v.%v", e.Enum, e.Variant)
}

type ErrEnumWord struct {
	Enum string
	Word Word
}

func (e ErrEnumWord) Error() string {
	return f("%v matches no %v variant", e.Word, e.Enum)
}

type ErrEnumIndex int

func (e ErrEnumIndex) Error() string {
	return f("variant %v out of range", int(e))
}
