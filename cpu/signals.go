package cpu

import (
	"fmt"
)

// BusSource selects which of the bus sources drives the shared bus.
type BusSource int

//go:generate go tool stringer -linecomment -type=BusSource
const (
	BUS_DONTCARE = BusSource(0) // ?
	BUS_REG      = BusSource(1) // reg
	BUS_DIN      = BusSource(2) // din
	BUS_G        = BusSource(3) // g
)

// BusSelect is the bus selector with its register payload.
type BusSelect struct {
	Source BusSource
	Reg    RegisterID // valid only when Source is BUS_REG
}

// String returns the selector in trace form.
func (sel BusSelect) String() string {
	if sel.Source == BUS_REG {
		return fmt.Sprintf("%v", sel.Reg)
	}

	return sel.Source.String()
}

// Signals is the control vector the decode table produces each tick.
// At most one RegIn enable may be asserted per tick.
type Signals struct {
	Bus   BusSelect
	RegIn [NUM_REGISTERS]bool // one-hot register latch enables
	AIn   bool                // latch operand buffer A from the bus
	GIn   bool                // latch ALU result buffer G
	IRIn  bool                // latch instruction register from din
	Mode  Mode                // ALU function
	Done  bool                // instruction retires this tick
}

// onehot verifies the latch-enable invariant. A violation is an
// internal-consistency error, never resolved by priority.
func (s Signals) onehot() (err error) {
	count := 0
	for _, enable := range s.RegIn {
		if enable {
			count++
		}
	}

	if count > 1 {
		err = ErrMultipleLatch
	}

	return
}
