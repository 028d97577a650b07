package cpu

import (
	"github.com/ezrec/kror/logic"
)

// Register is a clocked storage cell. Writes are staged with Propose and
// take effect only at Latch, so every block in the network observes
// pre-tick values while a tick settles.
type Register struct {
	name   string
	width  int
	value  logic.Word
	next   logic.Word
	enable bool
}

// NewRegister creates a named register of the given width, cleared.
func NewRegister(name string, width int) (r *Register) {
	r = &Register{
		name:  name,
		width: width,
		value: logic.NewWord(width, 0),
	}

	return
}

// Name returns the register's wiring name.
func (r *Register) Name() string {
	return r.name
}

// Value returns the current (pre-tick) word.
func (r *Register) Value() logic.Word {
	return r.value
}

// Propose stages the input to apply at the next clock edge. The value is
// held only when enable is asserted.
func (r *Register) Propose(enable bool, input logic.Word) {
	if input.Width != r.width {
		panic("register width")
	}

	r.enable = enable
	r.next = input
}

// Latch applies the staged update at the clock edge.
func (r *Register) Latch() {
	if r.enable {
		r.value = r.next
	}

	r.enable = false
}

// Clear resets the register to zero.
func (r *Register) Clear() {
	r.value = logic.NewWord(r.width, 0)
	r.enable = false
}
