package cpu

import (
	"iter"

	"github.com/ezrec/kror/logic"
)

// Code is one assembled instruction: the word fed on din during the
// fetch cycle, and for mvi the immediate fed on din the following tick.
type Code struct {
	Word      logic.Word
	Immediate *logic.Word
}

// Statement is a source line with its generated code.
type Statement struct {
	LineNo int
	Words  []string
	Code   Code
}

// Program is an assembled instruction listing.
type Program struct {
	Statements []Statement
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int {
	return len(prog.Statements)
}

// Codes iterates the program's codes in execution order.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(n int, code Code) bool) {
		for n, st := range prog.Statements {
			if !yield(n, st.Code) {
				return
			}
		}
	}
}
