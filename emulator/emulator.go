// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/kror/cpu"
	"github.com/ezrec/kror/internal"
	"github.com/ezrec/kror/logic"
)

// RETIRE_MAX_TICKS is the longest instruction, measured in clock ticks.
const RETIRE_MAX_TICKS = 4

var _emulator_defines = map[string]string{
	"RETIRE_MAX_TICKS": fmt.Sprintf("%v", RETIRE_MAX_TICKS),
}

// Emulator drives a machine from an assembled program. It asserts run
// and feeds the next instruction word over din whenever the control unit
// idles in T0, and feeds the mvi immediate on the following tick.
type Emulator struct {
	Verbose bool // If set, enables verbose logging.

	*cpu.Machine              // Reference to the processor simulation.
	Program      *cpu.Program // Reference to the currently running program listing.

	Retired int // Instructions retired since reset.

	pc  int
	imm *logic.Word
}

// NewEmulator creates a new emulator around a freshly wired machine.
func NewEmulator() (emu *Emulator, err error) {
	machine, err := cpu.NewMachine()
	if err != nil {
		return
	}

	emu = &Emulator{
		Machine: machine,
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Machine.Defines(),
	)
}

// Reset clears the machine and rewinds the program.
func (emu *Emulator) Reset() {
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.Reset()
	emu.Retired = 0
	emu.pc = 0
	emu.imm = nil
}

// LineNo returns the source line of the instruction being executed.
func (emu *Emulator) LineNo() int {
	if emu.pc < emu.Program.Len() {
		return emu.Program.Statements[emu.pc].LineNo
	}

	return 0
}

// Tick advances the machine one clock edge, driving run and din for the
// current program position. halted is set once the program is exhausted
// and the control unit is idle.
func (emu *Emulator) Tick() (halted bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	run := false
	din := logic.NewWord(cpu.WORD_WIDTH, 0)

	switch {
	case emu.Machine.Status == cpu.ST_T0:
		if emu.pc >= emu.Program.Len() {
			halted = true
			return
		}
		st := emu.Program.Statements[emu.pc]
		din = st.Code.Word
		emu.imm = st.Code.Immediate
		run = true
	case emu.imm != nil:
		// The mvi payload is sampled the tick after fetch.
		din = *emu.imm
		emu.imm = nil
	}

	done, err := emu.Machine.Tick(run, din)
	if err != nil {
		return
	}

	if done {
		emu.Retired++
		emu.pc++
	}

	return
}

// Run executes the program to completion.
func (emu *Emulator) Run() (err error) {
	limit := (emu.Program.Len() + 1) * RETIRE_MAX_TICKS

	for ticks := 0; ; ticks++ {
		if ticks > limit {
			err = ErrRunaway
			return
		}

		var halted bool
		halted, err = emu.Tick()
		if halted || err != nil {
			return
		}
	}
}
