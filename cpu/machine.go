// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/kror/logic"
)

var _machine_defines = map[string]string{
	"WORD_WIDTH":    fmt.Sprintf("%v", WORD_WIDTH),
	"OPCODE_WIDTH":  fmt.Sprintf("%v", OPCODE_WIDTH),
	"REGSEL_WIDTH":  fmt.Sprintf("%v", REGSEL_WIDTH),
	"NUM_REGISTERS": fmt.Sprintf("%v", NUM_REGISTERS),
}

// Snapshot is the read-only register-file view exposed after each commit
// phase.
type Snapshot struct {
	R      [NUM_REGISTERS]logic.Word
	A      logic.Word
	G      logic.Word
	IR     logic.Word
	Status Status
	Done   bool

	// Signals is the settled control vector of the last tick.
	Signals Signals

	// Bus is the settled bus word of the last tick. BusUnconstrained is
	// set when the decode table left the bus don't-care that tick; the
	// word then carries no meaning and harnesses should assert
	// non-dependence rather than a value.
	Bus              logic.Word
	BusUnconstrained bool
}

// Machine is the top-level synchronous network: register bank, shared
// bus, ALU, and control unit, advanced tick by tick. The only persistent
// state is the registers and the Status; everything else is recomputed
// every tick.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	R  [NUM_REGISTERS]*Register // General registers r0..r3.
	A  *Register                // ALU operand buffer.
	G  *Register                // ALU result buffer.
	IR *Register                // Instruction register, loaded from din.

	Status Status // Current microcycle.
	Ticks  int    // Clock edge counter.

	table ControlTable
	last  Snapshot
}

// NewMachine wires the network with the default control table.
func NewMachine() (m *Machine, err error) {
	return NewMachineTable(DefaultControlTable())
}

// NewMachineTable wires the network with the given control table and
// runs every definition-time check before the first tick.
func NewMachineTable(table ControlTable) (m *Machine, err error) {
	m = &Machine{
		A:     NewRegister("a", WORD_WIDTH),
		G:     NewRegister("g", WORD_WIDTH),
		IR:    NewRegister("ir", WORD_WIDTH),
		table: table,
	}
	for n := range m.R {
		m.R[n] = NewRegister(fmt.Sprintf("r%d", n), WORD_WIDTH)
	}

	err = m.table.Validate()
	if err != nil {
		m = nil
		return
	}

	err = m.wiring().check()
	if err != nil {
		m = nil
		return
	}

	return
}

// wiring declares the fixed network topology for the load-time
// acyclicity check. Every feedback path crosses a register.
func (m *Machine) wiring() (nl *netlist) {
	nl = newNetlist()

	nl.comb("run")
	nl.comb("din")
	nl.reg("status", "control")
	nl.reg("ir", "din")
	nl.comb("control", "status", "ir", "run")
	nl.comb("bus", "control", "r0", "r1", "r2", "r3", "din", "g")
	nl.comb("alu", "control", "a", "bus")
	for n := range m.R {
		nl.reg(m.R[n].Name(), "bus", "control")
	}
	nl.reg("a", "bus", "control")
	nl.reg("g", "alu", "control")

	return
}

// Defines returns the machine's symbolic constants.
func (m *Machine) Defines() iter.Seq2[string, string] {
	return maps.All(_machine_defines)
}

// Reset clears the register bank and returns the control unit to T0.
func (m *Machine) Reset() {
	for _, r := range m.registers() {
		r.Clear()
	}
	m.Status = ST_T0
	m.Ticks = 0
	m.last = Snapshot{}

	if m.Verbose {
		log.Printf("machine: reset")
	}
}

// registers lists every clocked cell in the bank.
func (m *Machine) registers() (regs []*Register) {
	regs = append(regs, m.R[:]...)
	regs = append(regs, m.A, m.G, m.IR)

	return
}

// busValue drives the shared bus from the selected source. A don't-care
// selection settles to zero; wild marks it unconstrained.
func (m *Machine) busValue(sel BusSelect, din logic.Word) (w logic.Word, wild bool) {
	switch sel.Source {
	case BUS_REG:
		w = m.R[sel.Reg].Value()
	case BUS_DIN:
		w = din
	case BUS_G:
		w = m.G.Value()
	default:
		w = logic.NewWord(WORD_WIDTH, 0)
		wild = true
	}

	return
}

// Tick advances the network one clock edge. The settle phase evaluates
// the control unit, bus, and ALU from pre-tick register values; the
// commit phase then applies every register latch and the Status
// transition atomically. The returned done is sampled from the settle
// phase of this tick.
func (m *Machine) Tick(run bool, din logic.Word) (done bool, err error) {
	// Settle phase.
	in, err := DecodeInstruction(m.IR.Value())
	if err != nil {
		return
	}

	sig, err := m.table.Signals(m.Status, in)
	if err != nil {
		return
	}

	err = sig.onehot()
	if err != nil {
		return
	}

	bus, wild := m.busValue(sig.Bus, din)
	out := alu(sig.Mode, m.A.Value(), bus)

	if m.Verbose {
		log.Printf("machine: %4d %v %v: bus=%v done=%v", m.Ticks, m.Status, in, sig.Bus, sig.Done)
	}

	// Commit phase.
	for n, r := range m.R {
		r.Propose(sig.RegIn[n], bus)
	}
	m.A.Propose(sig.AIn, bus)
	m.G.Propose(sig.GIn, out)
	m.IR.Propose(sig.IRIn, din)
	for _, r := range m.registers() {
		r.Latch()
	}
	m.Status = m.Status.Next(run, sig.Done)
	m.Ticks++

	done = sig.Done
	m.last = Snapshot{
		A:                m.A.Value(),
		G:                m.G.Value(),
		IR:               m.IR.Value(),
		Status:           m.Status,
		Done:             done,
		Signals:          sig,
		Bus:              bus,
		BusUnconstrained: wild,
	}
	for n, r := range m.R {
		m.last.R[n] = r.Value()
	}

	return
}

// Snapshot returns the register-file view after the last commit phase.
func (m *Machine) Snapshot() (snap Snapshot) {
	return m.last
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text = fmt.Sprintf("%6s: %v\n", "status", m.Status)
	for _, r := range m.registers() {
		text += fmt.Sprintf("%6s: %v\n", r.Name(), r.Value())
	}

	return
}
