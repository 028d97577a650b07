package cpu

import (
	"errors"
)

// busArg names a bus source symbolically. RX and RY resolve against the
// operand fields of the instruction being executed.
type busArg int

const (
	busDontcare = busArg(0)
	busRX       = busArg(1)
	busRY       = busArg(2)
	busDin      = busArg(3)
	busG        = busArg(4)
)

// latchArg names the register latch target, if any.
type latchArg int

const (
	latchNone = latchArg(0)
	latchRX   = latchArg(1)
)

// row is one decode-table entry: the control vector for one
// (state, opcode) pair with operands still symbolic.
type row struct {
	bus   busArg
	latch latchArg
	aIn   bool
	gIn   bool
	irIn  bool
	mode  Mode
	done  bool
}

// ControlTable maps (state, opcode) to a control vector. The table must
// be total over every pair reachable from T0 under the transition rule.
type ControlTable map[Status]map[Opcode]row

// DefaultControlTable builds the control table for the four-instruction
// set. T0 is the fetch cycle, identical for every opcode: the bus is
// don't-care, no register latches, and the instruction register loads
// from din. Entries beyond T1 for mv and mvi are unreachable because
// done retires them at T1, so the table omits them.
func DefaultControlTable() (table ControlTable) {
	fetch := row{bus: busDontcare, irIn: true}

	table = ControlTable{
		ST_T0: {
			OP_MV:  fetch,
			OP_MVI: fetch,
			OP_ADD: fetch,
			OP_SUB: fetch,
		},
		ST_T1: {
			OP_MV:  {bus: busRY, latch: latchRX, done: true},
			OP_MVI: {bus: busDin, latch: latchRX, done: true},
			OP_ADD: {bus: busRX, aIn: true},
			OP_SUB: {bus: busRX, aIn: true},
		},
		ST_T2: {
			OP_ADD: {bus: busRY, gIn: true, mode: MODE_ADD},
			OP_SUB: {bus: busRY, gIn: true, mode: MODE_SUB},
		},
		ST_T3: {
			OP_ADD: {bus: busG, latch: latchRX, done: true},
			OP_SUB: {bus: busG, latch: latchRX, done: true},
		},
	}

	return
}

// Validate checks the table before any tick runs. The fetch row must
// cover the whole instruction set, and every (state, opcode) pair
// reachable under the transition rule must have an entry. Reachability
// follows the table's own done bits, so a retired opcode needs no rows
// past its final state.
func (table ControlTable) Validate() (err error) {
	indices := []int{}
	for op := range table[ST_T0] {
		indices = append(indices, int(op))
	}
	err = instructionSet.CheckCases(false, indices...)
	if err != nil {
		err = errors.Join(ErrIncompleteTable, err)
		return
	}

	for index := range instructionSet.Variants {
		op := Opcode(index)

		st := ST_T0.Next(true, false)
		for st != ST_T0 {
			r, ok := table[st][op]
			if !ok {
				err = errors.Join(ErrIncompleteTable, ErrTableEntry{st, op})
				return
			}

			next := st.Next(false, r.done)
			if next == st {
				// T3 without done never retires.
				err = errors.Join(ErrIncompleteTable, ErrTableEntry{st, op})
				return
			}
			st = next
		}
	}

	return
}

// Signals looks up the control vector for one tick and resolves its
// symbolic operands against the decoded instruction.
func (table ControlTable) Signals(st Status, in Instruction) (s Signals, err error) {
	r, ok := table[st][in.Op]
	if !ok {
		err = errors.Join(ErrIncompleteTable, ErrTableEntry{st, in.Op})
		return
	}

	switch r.bus {
	case busRX:
		s.Bus = BusSelect{Source: BUS_REG, Reg: in.Rx}
	case busRY:
		s.Bus = BusSelect{Source: BUS_REG, Reg: in.Ry}
	case busDin:
		s.Bus = BusSelect{Source: BUS_DIN}
	case busG:
		s.Bus = BusSelect{Source: BUS_G}
	default:
		s.Bus = BusSelect{Source: BUS_DONTCARE}
	}

	if r.latch == latchRX {
		s.RegIn[in.Rx] = true
	}

	s.AIn = r.aIn
	s.GIn = r.gIn
	s.IRIn = r.irIn
	s.Mode = r.mode
	s.Done = r.done

	return
}
