package cpu

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ezrec/dcpu16/internal"
)

// CodeOp is a basic opcode, the low 4 bits of an instruction word.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_NBI = CodeOp(0)  // NBI
	OP_SET = CodeOp(1)  // SET
	OP_ADD = CodeOp(2)  // ADD
	OP_SUB = CodeOp(3)  // SUB
	OP_MUL = CodeOp(4)  // MUL
	OP_DIV = CodeOp(5)  // DIV
	OP_MOD = CodeOp(6)  // MOD
	OP_SHL = CodeOp(7)  // SHL
	OP_SHR = CodeOp(8)  // SHR
	OP_AND = CodeOp(9)  // AND
	OP_BOR = CodeOp(10) // BOR
	OP_XOR = CodeOp(11) // XOR
	OP_IFE = CodeOp(12) // IFE
	OP_IFN = CodeOp(13) // IFN
	OP_IFG = CodeOp(14) // IFG
	OP_IFB = CodeOp(15) // IFB
)

// Cycles returns the base cycle cost of the opcode, before any value
// field surcharges.
func (op CodeOp) Cycles() uint64 {
	switch op {
	case OP_SET, OP_AND, OP_BOR, OP_XOR:
		return 1
	case OP_MUL, OP_DIV, OP_MOD:
		return 3
	case OP_NBI:
		return 0
	default:
		return 2
	}
}

// Conditional returns true for the IFx opcodes.
func (op CodeOp) Conditional() bool {
	return op >= OP_IFE && op <= OP_IFB
}

// CodeNbOp is a non-basic opcode, carried in the A field when the basic
// opcode is OP_NBI.
type CodeNbOp int

//go:generate go tool stringer -linecomment -type=CodeNbOp
const (
	NB_OP_HLT = CodeNbOp(0) // HLT
	NB_OP_JSR = CodeNbOp(1) // JSR
)

// JSR_CYCLES is the fixed cost of a JSR.
const JSR_CYCLES = 2

// CodeReg is a general purpose register index.
type CodeReg int

//go:generate go tool stringer -linecomment -type=CodeReg
const (
	REG_A = CodeReg(0) // A
	REG_B = CodeReg(1) // B
	REG_C = CodeReg(2) // C
	REG_X = CodeReg(3) // X
	REG_Y = CodeReg(4) // Y
	REG_Z = CodeReg(5) // Z
	REG_I = CodeReg(6) // I
	REG_J = CodeReg(7) // J
)

// REGISTER_COUNT is the number of general purpose registers.
const REGISTER_COUNT = 8

// CodeValue is a 6-bit value field.
type CodeValue uint16

const (
	VALUE_REG      = CodeValue(0x00) // register
	VALUE_REG_MEM  = CodeValue(0x08) // [register]
	VALUE_REG_NEXT = CodeValue(0x10) // [next word + register]
	VALUE_POP      = CodeValue(0x18) // [SP++]
	VALUE_PEEK     = CodeValue(0x19) // [SP]
	VALUE_PUSH     = CodeValue(0x1a) // [--SP]
	VALUE_SP       = CodeValue(0x1b) // SP
	VALUE_PC       = CodeValue(0x1c) // PC
	VALUE_O        = CodeValue(0x1d) // O
	VALUE_MEM_NEXT = CodeValue(0x1e) // [next word]
	VALUE_NEXT     = CodeValue(0x1f) // next word (literal)
	VALUE_LITERAL  = CodeValue(0x20) // literal 0x00-0x1f

	VALUE_MASK        = CodeValue(0x3f)
	VALUE_LITERAL_MAX = 0x1f
)

// Extended returns true if the value field consumes the next word.
func (cv CodeValue) Extended() bool {
	switch {
	case cv >= VALUE_REG_NEXT && cv < VALUE_POP:
		return true
	case cv == VALUE_MEM_NEXT, cv == VALUE_NEXT:
		return true
	}
	return false
}

// Writable returns false for the literal value fields.
func (cv CodeValue) Writable() bool {
	return cv < VALUE_NEXT
}

// keywordMap maps the stack and special register keywords.
var keywordMap = map[string]CodeValue{
	"POP":  VALUE_POP,
	"PEEK": VALUE_PEEK,
	"PUSH": VALUE_PUSH,
	"SP":   VALUE_SP,
	"PC":   VALUE_PC,
	"O":    VALUE_O,
}

// Operand is a value field of an instruction, with the extra word it
// consumes (if any). An operand with a Label is an unresolved reference,
// and is always encoded as VALUE_NEXT once linked.
type Operand struct {
	Field CodeValue // Value field.
	Next  uint16    // Extra word, if Field is extended.
	Label string    // Unresolved label reference.
}

// MakeRegister creates a register direct operand.
func MakeRegister(reg CodeReg) Operand {
	return Operand{Field: VALUE_REG + CodeValue(reg)}
}

// MakeLiteral creates a literal operand, embedded in the value field when
// it fits.
func MakeLiteral(value uint16) Operand {
	if value <= VALUE_LITERAL_MAX {
		return Operand{Field: VALUE_LITERAL + CodeValue(value)}
	}
	return Operand{Field: VALUE_NEXT, Next: value}
}

// MakeLabel creates an unresolved label reference.
func MakeLabel(label string) Operand {
	return Operand{Field: VALUE_NEXT, Label: label}
}

// Extended returns true if the operand needs an extra word.
func (v Operand) Extended() bool {
	return v.Field.Extended()
}

// Size returns the number of extra words the operand needs.
func (v Operand) Size() int {
	if v.Extended() {
		return 1
	}
	return 0
}

// String returns the assembly language representation of the operand.
func (v Operand) String() string {
	field := v.Field & VALUE_MASK
	switch {
	case field < VALUE_REG_MEM:
		return CodeReg(field - VALUE_REG).String()
	case field < VALUE_REG_NEXT:
		return fmt.Sprintf("[%v]", CodeReg(field-VALUE_REG_MEM))
	case field < VALUE_POP:
		return fmt.Sprintf("[0x%04x+%v]", v.Next, CodeReg(field-VALUE_REG_NEXT))
	case field == VALUE_MEM_NEXT:
		return fmt.Sprintf("[0x%04x]", v.Next)
	case field == VALUE_NEXT:
		if len(v.Label) != 0 {
			return v.Label
		}
		return fmt.Sprintf("0x%04x", v.Next)
	case field >= VALUE_LITERAL:
		return fmt.Sprintf("0x%02x", uint16(field-VALUE_LITERAL))
	}

	for key, value := range keywordMap {
		if value == field {
			return key
		}
	}

	return fmt.Sprintf("0x%02x", uint16(field))
}

// Instruction represents a line of assembled code with its source location.
type Instruction struct {
	LineNo int      // Source line number.
	Ip     int      // Word address of the header word.
	Words  []string // Source words.
	Op     CodeOp   // Basic opcode.
	A      Operand  // A operand, or non-basic opcode if Op is OP_NBI.
	B      Operand  // B operand.
}

// MakeBasic creates a basic instruction.
func MakeBasic(op CodeOp, a, b Operand) Instruction {
	return Instruction{Op: op, A: a, B: b}
}

// MakeNonBasic creates a non-basic instruction.
func MakeNonBasic(op CodeNbOp, b Operand) Instruction {
	return Instruction{Op: OP_NBI, A: Operand{Field: CodeValue(op)}, B: b}
}

// NonBasic returns the non-basic opcode, carried in the A field.
func (ins Instruction) NonBasic() CodeNbOp {
	return CodeNbOp(ins.A.Field & VALUE_MASK)
}

// Size returns the number of words the instruction encodes to.
func (ins Instruction) Size() int {
	size := 1 + ins.B.Size()
	if ins.Op != OP_NBI {
		size += ins.A.Size()
	}
	return size
}

// Word returns the header word of the instruction.
func (ins Instruction) Word() uint16 {
	return (uint16(ins.Op) & 0xf) |
		(uint16(ins.A.Field&VALUE_MASK) << 4) |
		(uint16(ins.B.Field&VALUE_MASK) << 10)
}

// Codes returns the encoded words of the instruction.
func (ins Instruction) Codes() iter.Seq[uint16] {
	var extra [2][]uint16
	if ins.Op != OP_NBI && ins.A.Extended() {
		extra[0] = []uint16{ins.A.Next}
	}
	if ins.B.Extended() {
		extra[1] = []uint16{ins.B.Next}
	}
	return internal.IterSeqConcat(
		slices.Values([]uint16{ins.Word()}),
		slices.Values(extra[0]),
		slices.Values(extra[1]),
	)
}

// String returns the assembly language representation of the instruction.
func (ins Instruction) String() string {
	if ins.Op != OP_NBI {
		return fmt.Sprintf("%v %v, %v", ins.Op, ins.A, ins.B)
	}

	switch op := ins.NonBasic(); op {
	case NB_OP_HLT:
		return op.String()
	case NB_OP_JSR:
		return fmt.Sprintf("%v %v", op, ins.B)
	default:
		return fmt.Sprintf("%v 0x%02x, %v", OP_NBI, uint16(op), ins.B)
	}
}

// Decode disassembles the instruction at ip, using fetch to read words.
func Decode(fetch func(ip uint16) uint16, ip uint16) (ins Instruction) {
	word := fetch(ip)
	ins = Instruction{
		Ip: int(ip),
		Op: CodeOp(word & 0xf),
		A:  Operand{Field: CodeValue((word >> 4) & 0x3f)},
		B:  Operand{Field: CodeValue((word >> 10) & 0x3f)},
	}

	next := ip + 1
	if ins.Op != OP_NBI && ins.A.Extended() {
		ins.A.Next = fetch(next)
		next++
	}
	if ins.B.Extended() {
		ins.B.Next = fetch(next)
	}

	return
}
