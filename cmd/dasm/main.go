// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	stdio "io"
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/dcpu16/cpu"
	"github.com/ezrec/dcpu16/io"
	"github.com/ezrec/dcpu16/translate"
)

// run assembles the single source file named in args, and writes the ROM
// block to stdout. Returns the process exit code.
func run(args []string, stdout stdio.Writer, stderr stdio.Writer) int {
	var verbose bool

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.Usage = func() {
		translate.To(stderr, "usage: %v [-v] <file.dasm>\n", args[0])
		flags.PrintDefaults()
	}

	err := flags.Parse(args[1:])
	if err != nil {
		return 1
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return 1
	}

	source := flags.Arg(0)
	inf, err := os.Open(source)
	if err != nil {
		translate.To(stderr, "%v: %v\n", source, errors.Join(io.ErrFileOpen, err))
		return 1
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	prog, err := asm.Parse(inf)
	if err != nil {
		translate.To(stderr, "Compile error: %v\n", err)
		return 1
	}

	rom := &io.Rom{Data: prog.Binary()}
	err = rom.Marshal(stdout)
	if err != nil {
		translate.To(stderr, "%v\n", err)
		return 1
	}

	return 0
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("dasm: ")

	atexit.Exit(run(os.Args, os.Stdout, os.Stderr))
}
