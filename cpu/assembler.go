// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/kror/logic"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass assembler for the four-instruction set.
type Assembler struct {
	Verbose   bool              // If set, verbosely logs the assembler actions.
	Statement []Statement       // List of generated statements.
	Equate    map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// regMap is a map of register names to register selectors.
var regMap = map[string]RegisterID{
	"r0": REG_R0,
	"r1": REG_R1,
	"r2": REG_R2,
	"r3": REG_R3,
}

// opMap is a map of mnemonics to opcodes.
var opMap = map[string]Opcode{
	"mv":  OP_MV,
	"mvi": OP_MVI,
	"add": OP_ADD,
	"sub": OP_SUB,
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	v64, err := strconv.ParseInt(word, 0, 33)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 < 0 {
		v64 += 1 << WORD_WIDTH
	}
	if v64 < 0 || v64 >= (1<<WORD_WIDTH) {
		err = ErrValueRange
		return
	}

	value = uint32(v64)

	return
}

// registerOf returns the register selector for a register name.
func (asm *Assembler) registerOf(word string) (reg RegisterID, err error) {
	reg, ok := regMap[word]
	if !ok {
		err = errors.Join(ErrRegisterInvalid, ErrParseRegister(word))
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value32 uint32
		value32, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

// parseLine parses a single line into assembler words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	for _, word := range strings.Split(line, " ") {
		if len(word) > 0 {
			words = append(words, word)
		}
	}

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	// Substitute equates.
	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// assembleWords turns one statement's words into a Code.
func (asm *Assembler) assembleWords(words []string) (code Code, err error) {
	op, ok := opMap[words[0]]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	args := words[1:]
	if len(args) < 1 {
		err = ErrRegisterMissing
		return
	}
	if len(args) > 2 {
		err = ErrOpcodeExtraArgs
		return
	}

	rx, err := asm.registerOf(args[0])
	if err != nil {
		return
	}

	in := MakeInstruction(op, rx, REG_R0)

	if op == OP_MVI {
		if len(args) != 2 {
			err = ErrValueMissing
			return
		}
		var value uint32
		value, err = asm.valueOf(args[1])
		if err != nil {
			return
		}
		imm := logic.NewWord(WORD_WIDTH, value)
		code = Code{Word: in.Word(), Immediate: &imm}
		return
	}

	if len(args) != 2 {
		err = ErrRegisterMissing
		return
	}
	in.Ry, err = asm.registerOf(args[1])
	if err != nil {
		return
	}

	code = Code{Word: in.Word()}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Statement = asm.Statement[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}
		if len(words) == 0 {
			continue
		}

		var code Code
		code, err = asm.assembleWords(words)
		if err != nil {
			return
		}

		asm.Statement = append(asm.Statement, Statement{
			LineNo: lineno,
			Words:  words,
			Code:   code,
		})
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{Statements: asm.Statement}

	return
}
