package cpu

import (
	"errors"
	"fmt"

	"github.com/ezrec/kror/logic"
)

// Word widths of the datapath formats.
const (
	WORD_WIDTH   = 8 // data and instruction words
	OPCODE_WIDTH = 4 // opcode field
	REGSEL_WIDTH = 2 // register selector field
)

// Instruction word field offsets: [7:4] opcode, [3:2] rx, [1:0] ry.
const (
	OPCODE_SHIFT = 4
	RX_SHIFT     = 2
	RY_SHIFT     = 0
)

// RegisterID selects one of the four general registers.
type RegisterID int

//go:generate go tool stringer -linecomment -type=RegisterID
const (
	REG_R0 = RegisterID(0) // r0
	REG_R1 = RegisterID(1) // r1
	REG_R2 = RegisterID(2) // r2
	REG_R3 = RegisterID(3) // r3
)

// NUM_REGISTERS is the size of the general register bank.
const NUM_REGISTERS = 4

// Opcode is the instruction class of an 8-bit instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_MV  = Opcode(0) // mv
	OP_MVI = Opcode(1) // mvi
	OP_ADD = Opcode(2) // add
	OP_SUB = Opcode(3) // sub
)

// instructionSet binds each opcode to its word pattern, in decode order.
// Operand fields are wildcards; mvi ignores its ry field entirely.
var instructionSet = logic.MustEnum("instruction", WORD_WIDTH,
	logic.Variant{Name: "mv", Pattern: logic.MustPattern("____????")},
	logic.Variant{Name: "mvi", Pattern: logic.MustPattern("___@????")},
	logic.Variant{Name: "add", Pattern: logic.MustPattern("__@_????")},
	logic.Variant{Name: "sub", Pattern: logic.MustPattern("__@@????")},
)

// Instruction is a decoded instruction word.
type Instruction struct {
	Op Opcode
	Rx RegisterID // destination
	Ry RegisterID // source (mv, add, sub)
}

// DecodeInstruction decodes an 8-bit instruction word. A word that
// matches no opcode pattern is reported to the caller, which halts the
// simulation.
func DecodeInstruction(w logic.Word) (in Instruction, err error) {
	index, err := instructionSet.Decode(w)
	if err != nil {
		err = errors.Join(ErrInstructionInvalid, err)
		return
	}

	in = Instruction{
		Op: Opcode(index),
		Rx: RegisterID(w.Field(RX_SHIFT, REGSEL_WIDTH).Bits),
		Ry: RegisterID(w.Field(RY_SHIFT, REGSEL_WIDTH).Bits),
	}

	return
}

// MakeInstruction creates an instruction with both operand fields.
func MakeInstruction(op Opcode, rx, ry RegisterID) (in Instruction) {
	return Instruction{Op: op, Rx: rx, Ry: ry}
}

// Word encodes the instruction as an 8-bit word. Encoding inverts
// DecodeInstruction.
func (in Instruction) Word() (w logic.Word) {
	bits := uint32(in.Op)<<OPCODE_SHIFT |
		uint32(in.Rx)<<RX_SHIFT |
		uint32(in.Ry)<<RY_SHIFT

	return logic.NewWord(WORD_WIDTH, bits)
}

// String returns the instruction in assembler form.
func (in Instruction) String() string {
	if in.Op == OP_MVI {
		return fmt.Sprintf("%v %v", in.Op, in.Rx)
	}

	return fmt.Sprintf("%v %v %v", in.Op, in.Rx, in.Ry)
}
