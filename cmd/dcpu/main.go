// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tebeka/atexit"

	"github.com/ezrec/dcpu16/cpu"
	"github.com/ezrec/dcpu16/emulator"
	"github.com/ezrec/dcpu16/io"
)

func main() {
	var rom string
	var until string
	var limit int
	var quiet bool
	var verbose bool

	log.SetFlags(0)
	log.SetPrefix("dcpu: ")

	flag.StringVar(&rom, "r", "example.rom", "ROM file to run")
	flag.StringVar(&until, "u", "", "Stop when this expression is true, e.g. 'A == 0x30'")
	flag.IntVar(&limit, "n", 0, "Stop after this many instructions (0 is unlimited)")
	flag.BoolVar(&quiet, "q", false, "Only dump the final state")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	dir, file := filepath.Split(rom)
	if len(dir) == 0 {
		dir = "."
	}

	image, err := io.LoadRom(os.DirFS(dir), file)
	if err != nil {
		log.Printf("%v", err)
		atexit.Exit(1)
	}

	emu := emulator.NewEmulator()
	emu.Rom = *image
	emu.Verbose = verbose
	emu.Until = until
	emu.MaxTicks = limit

	err = emu.Reset()
	if err != nil {
		log.Printf("%v", err)
		atexit.Exit(1)
	}

	fmt.Println(cpu.DumpHeader)
	atexit.Register(func() {
		fmt.Println(emu.Cpu)
	})

	for done := false; !done; {
		if !quiet {
			fmt.Println(emu.Cpu)
		}
		done, err = emu.Tick()
		if err != nil {
			log.Printf("%v", err)
			atexit.Exit(1)
		}
	}

	atexit.Exit(0)
}
