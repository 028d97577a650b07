// Package cpu implements the synchronous simple-processor kernel and its
// assembler.
//
// The processor is a four-register machine with an add/subtract ALU, a
// shared data bus, and a control unit that sequences each instruction
// through up to four microcycles (T0-T3). A tick settles the whole
// combinational network against pre-tick register values, then commits
// every register latch and the state transition atomically. mv and mvi
// retire after two ticks, add and sub after four.
package cpu
