// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/dcpu16/cpu"
	"github.com/ezrec/dcpu16/io"
)

// Emulator state. CPU + ROM image + run limits.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the program listing, if known.
	Rom      io.Rom       // ROM image loaded into memory at reset.
	Reporter Reporter     // Diagnostics sink.

	Until    string // Stop condition, a starlark expression.
	MaxTicks int    // If non-zero, stop after this many ticks.

	Diagnostics int // Diagnostics reported since reset.

	ticks int
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:      cpu.NewCpu(),
		Reporter: LogReporter{},
	}

	return
}

// Reset the emulator state, and load the ROM image into memory.
// If the ROM is empty, the program binary is used instead.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = false

	image := emu.Rom.Data
	if len(image) == 0 && emu.Program != nil {
		image = emu.Program.Binary()
	}

	emu.Cpu.Reset()
	emu.Cpu.Load(image)

	emu.ticks = 0
	emu.Diagnostics = 0

	// Check the stop condition before anything runs.
	if len(emu.Until) != 0 {
		_, err = emu.until()
		if err != nil {
			return
		}
	}

	emu.Cpu.Verbose = emu.Verbose

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.ticks
}

// Cycles returns the total cycles since a reset.
func (emu *Emulator) Cycles() uint64 {
	return emu.Cpu.Cycles
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return int(emu.Cpu.Pc)
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Instruction == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.Cpu.Halted {
		done = true
		return
	}

	if emu.Verbose && emu.Program != nil {
		for _, label := range emu.Program.LabelsAt(emu.Cpu.Pc) {
			log.Printf("%v:", label)
		}
	}

	ip := emu.Cpu.Pc
	diag := emu.Cpu.Step()
	emu.ticks++

	if diag != nil {
		emu.Diagnostics++
		if emu.Reporter != nil {
			emu.Reporter.Report(ip, diag)
		}
	}

	if emu.Cpu.Halted {
		done = true
	}

	if emu.MaxTicks > 0 && emu.ticks >= emu.MaxTicks {
		done = true
	}

	if len(emu.Until) != 0 && !done {
		done, err = emu.until()
	}

	return
}

// Run ticks until done, or error.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// globals returns the starlark view of the CPU state.
func (emu *Emulator) globals() starlark.StringDict {
	pred := starlark.StringDict{
		"PC":     starlark.MakeInt(int(emu.Cpu.Pc)),
		"SP":     starlark.MakeInt(int(emu.Cpu.Sp)),
		"O":      starlark.MakeInt(int(emu.Cpu.O)),
		"CYCLES": starlark.MakeUint64(emu.Cpu.Cycles),
		"TICKS":  starlark.MakeInt(emu.ticks),
		"PEEK":   starlark.MakeInt(int(emu.Cpu.Peek())),
		"DEPTH":  starlark.MakeInt(emu.Cpu.Depth()),
		"mem":    starlark.NewBuiltin("mem", emu.mem),
	}

	for n, value := range emu.Cpu.Register {
		pred[cpu.CodeReg(n).String()] = starlark.MakeInt(int(value))
	}

	return pred
}

// mem is the starlark mem(addr) builtin.
func (emu *Emulator) mem(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var addr int
	err = starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &addr)
	if err != nil {
		return
	}

	value = starlark.MakeInt(int(emu.Cpu.Memory[uint16(addr)]))
	return
}

// until evaluates the stop condition.
func (emu *Emulator) until() (stop bool, err error) {
	thread := starlark.Thread{Name: "until"}
	opts := syntax.FileOptions{}
	prog := "rc=" + strings.TrimSpace(emu.Until) + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "until", prog, emu.globals())
	if err != nil {
		err = errors.Join(ErrUntil(emu.Until), err)
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = ErrUntil(emu.Until)
		return
	}

	stop = bool(rc.Truth())
	return
}
