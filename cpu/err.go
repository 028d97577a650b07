package cpu

import (
	"errors"

	"github.com/ezrec/kror/translate"
)

var f = translate.From

var (
	// Definition-time errors, detected at load before any tick runs.
	ErrIncompleteTable   = errors.New(f("incomplete decode table"))
	ErrCombinationalLoop = errors.New(f("combinational loop"))

	// Runtime errors; each halts the simulation.
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrMultipleLatch      = errors.New(f("multiple latch enables asserted"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrOpcodeMissing   = errors.New(f("opcode missing"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrOpcodeExtraArgs = errors.New(f("excessive arguments"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrRegisterMissing = errors.New(f("register missing"))
	ErrValueMissing    = errors.New(f("value missing"))
	ErrValueRange      = errors.New(f("value out of range"))
)

type ErrTableEntry struct {
	Status Status
	Op     Opcode
}

func (e ErrTableEntry) Error() string {
	return f("no control row for %v %v", e.Status, e.Op)
}

type ErrLoop []string

func (e ErrLoop) Error() (text string) {
	for n, name := range e {
		if n > 0 {
			text += " -> "
		}
		text += name
	}

	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
