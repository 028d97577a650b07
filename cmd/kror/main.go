// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/kror/cpu"
	"github.com/ezrec/kror/emulator"
)

func main() {
	var compile string
	var verbose bool

	flag.StringVar(&compile, "c", "-", "assembly file to run; '-' for stdin")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu, err := emulator.NewEmulator()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	emu.Verbose = verbose

	input := os.Stdin
	if compile != "-" {
		input, err = os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer input.Close()
	}

	asm := &cpu.Assembler{Verbose: verbose}
	for attr, val := range emu.Defines() {
		asm.Predefine(attr, val)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	emu.Program = prog
	emu.Reset()

	err = emu.Run()
	if err != nil {
		log.Fatalf("%v: line %v: %v", compile, emu.LineNo(), err)
	}

	fmt.Print(emu.Machine.String())
}
