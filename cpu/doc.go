// Package cpu implements the microprocessor and assembler for the DCPU-16 system.
//
// The CPU consists of eight 16-bit general-purpose registers (A, B, C, X, Y,
// Z, I, J), a program counter (PC), a stack pointer (SP), an overflow
// register (O) and 64K words of memory. Instructions are one to three words
// long: a header word holding a 4-bit opcode and two 6-bit value fields,
// followed by the extra words those value fields consume.
//
// The assembler is a two pass assembler: the first pass builds instructions
// and the label table, the second pass links label references to addresses.
package cpu
