// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"
)

// MEMORY_SIZE is the number of words of memory.
const MEMORY_SIZE = 0x10000

// DumpHeader is the column header for String() dumps.
const DumpHeader = " A     B     C     X     Y     Z     I     J     PC    SP    O   cycles\n" +
	"-----------------------------------------------------------------------"

// Cpu is the simulation context for a DCPU-16.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [REGISTER_COUNT]uint16 // Register bank, in A B C X Y Z I J order.
	Pc       uint16                 // Program counter.
	Sp       uint16                 // Stack pointer.
	O        uint16                 // Overflow register.
	Memory   [MEMORY_SIZE]uint16    // Main memory.

	Cycles uint64 // Cycle counter.
	Halted bool   // Set by the halt instruction.
}

// NewCpu creates a new CPU.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// String returns the current CPU state as a fixed width line, matching the
// columns of DumpHeader.
func (cpu *Cpu) String() (text string) {
	for _, reg := range cpu.Register {
		text += fmt.Sprintf("%04x  ", reg)
	}
	text += fmt.Sprintf("%04x  %04x  %04x   %d", cpu.Pc, cpu.Sp, cpu.O, cpu.Cycles)

	return
}

// Reset the CPU state.
// - Clears the registers and memory.
// - Zeros the cycle counter.
// - Clears the halt flag.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.Memory[:])
	cpu.Pc = 0
	cpu.Sp = 0
	cpu.O = 0
	cpu.Cycles = 0
	cpu.Halted = false
}

// Load copies words into memory, starting at address 0.
func (cpu *Cpu) Load(words []uint16) {
	copy(cpu.Memory[:], words)

	if cpu.Verbose {
		log.Printf("cpu: loaded %d words", min(len(words), MEMORY_SIZE))
	}
}

// fetch returns the word at an address, for Decode.
func (cpu *Cpu) fetch(ip uint16) uint16 {
	return cpu.Memory[ip]
}

// nextWord returns the word at PC, and advances PC.
func (cpu *Cpu) nextWord() (word uint16) {
	word = cpu.Memory[cpu.Pc]
	cpu.Pc++
	return
}

// Step executes a single instruction.
//
// The returned error is a diagnostic: the instruction has been fully
// executed (with a no-op in place of the offending part) when it is
// reported, and the CPU may continue stepping.
func (cpu *Cpu) Step() (err error) {
	if cpu.Halted {
		return
	}

	ip := cpu.Pc
	if cpu.Verbose {
		log.Printf("%04x: %v", ip, Decode(cpu.fetch, ip))
	}

	word := cpu.nextWord()
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Ip: ip, Word: word}, err)
		}
	}()

	op := CodeOp(word & 0xf)
	a_field := CodeValue((word >> 4) & 0x3f)
	b_field := CodeValue((word >> 10) & 0x3f)

	if op == OP_NBI {
		var bv Location
		bv, err = cpu.NewValue(b_field)
		if err != nil {
			return
		}

		switch CodeNbOp(a_field) {
		case NB_OP_HLT:
			cpu.Halted = true
			if cpu.Verbose {
				log.Printf("cpu: halted at 0x%04x", ip)
			}
		case NB_OP_JSR:
			target := cpu.Get(bv)
			cpu.Push(cpu.Pc)
			cpu.Pc = target
			cpu.Cycles += JSR_CYCLES
		default:
			err = ErrInvalidNonBasic
		}
		return
	}

	av, err := cpu.NewValue(a_field)
	if err != nil {
		return
	}
	bv, err := cpu.NewValue(b_field)
	if err != nil {
		return
	}

	a := uint32(cpu.Get(av))
	b := uint32(cpu.Get(bv))

	cpu.Cycles += op.Cycles()

	res := doAlu(op, a, b)

	switch op {
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_SHL, OP_SHR:
		cpu.O = uint16(res >> 16)
		err = cpu.Set(av, uint16(res&0xffff))
	case OP_SET, OP_MOD, OP_AND, OP_BOR, OP_XOR:
		err = cpu.Set(av, uint16(res&0xffff))
	case OP_IFE, OP_IFN, OP_IFG, OP_IFB:
		// Skips only the header word of the next instruction.
		if res == 0 {
			cpu.Pc++
		}
	}

	return
}
