package logic

import (
	"fmt"
)

// Word is a fixed-width vector of 2-valued bits. Bit 0 is the least
// significant bit.
type Word struct {
	Bits  uint32
	Width int
}

// NewWord creates a word of the given width, truncating bits to fit.
func NewWord(width int, bits uint32) (w Word) {
	w = Word{
		Bits:  bits & mask(width),
		Width: width,
	}

	return
}

// mask returns a mask of the low 'width' bits.
func mask(width int) uint32 {
	return (uint32(1) << width) - 1
}

// Bit returns bit n of the word.
func (w Word) Bit(n int) bool {
	return (w.Bits>>n)&1 != 0
}

// Field extracts 'width' bits starting at bit 'offset'.
func (w Word) Field(offset, width int) Word {
	return NewWord(width, w.Bits>>offset)
}

// String returns the word as an MSB-first binary string.
func (w Word) String() string {
	return fmt.Sprintf("%0*b", w.Width, w.Bits)
}
