package cpu

import (
	"github.com/ezrec/kror/logic"
)

// Mode selects the ALU function.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_ADD = Mode(0) // add
	MODE_SUB = Mode(1) // sub
)

// alu computes (a ± b) mod 2^8; two's-complement wraparound, no flags.
// Purely combinational. The result persists only if G's latch enable is
// asserted the same tick.
func alu(mode Mode, a, b logic.Word) (out logic.Word) {
	switch mode {
	case MODE_SUB:
		out = logic.NewWord(WORD_WIDTH, a.Bits-b.Bits)
	default:
		out = logic.NewWord(WORD_WIDTH, a.Bits+b.Bits)
	}

	return
}
