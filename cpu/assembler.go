// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"maps"
	"slices"
	"strings"
)

// Assembler is a two pass assembler for the DCPU-16 system.
type Assembler struct {
	Verbose     bool          // If set, verbosely logs the assembler actions.
	Instruction []Instruction // List of generated instructions.

	Label map[string]int // Map of labels to word addresses.
}

// currentIp gets the current Ip
func (asm *Assembler) currentIp() int {
	if len(asm.Instruction) == 0 {
		return 0
	}

	last := asm.Instruction[len(asm.Instruction)-1]

	return last.Ip + last.Size()
}

// splitLabel splits off a leading 'label:' from a line.
func splitLabel(line string) (label string, rest string, ok bool) {
	label, rest, ok = strings.Cut(line, ":")
	if !ok || strings.ContainsAny(label, " \t") {
		return "", line, false
	}

	rest = strings.TrimSpace(rest)
	return
}

// parseLine parses a single line, recording any label it defines.
func (asm *Assembler) parseLine(text string, lineno int) (err error) {
	line, _, _ := strings.Cut(text, ";")
	line = strings.TrimSpace(line)

	if len(line) == 0 {
		return
	}

	label, line, ok := splitLabel(line)
	if ok {
		if !ValidLabel(label) {
			err = ErrInvalidLabelSyntax
			return
		}
		if asm.Verbose {
			if _, dup := asm.Label[label]; dup {
				log.Printf("%v: label %v redefined", lineno, label)
			}
		}
		asm.Label[label] = asm.currentIp()
		if len(line) == 0 {
			return
		}
	}

	ins, err := CompileLine(line)
	if err != nil {
		return
	}

	ins.LineNo = lineno
	ins.Ip = asm.currentIp()
	asm.Instruction = append(asm.Instruction, ins)

	if asm.Verbose {
		log.Printf("%v: 0x%04x: %v", lineno, ins.Ip, ins)
		if ins.Op != OP_NBI && !ins.Op.Conditional() && !ins.A.Field.Writable() {
			log.Printf("%v: warning: %v is not writable", lineno, ins.A)
		}
	}

	return
}

// link resolves all label references to their addresses.
func (asm *Assembler) link() (err error) {
	for n := range asm.Instruction {
		ins := &asm.Instruction[n]

		for _, value := range []*Operand{&ins.A, &ins.B} {
			if len(value.Label) == 0 {
				continue
			}
			ip, ok := asm.Label[value.Label]
			if !ok {
				err = &ErrSyntax{
					LineNo: ins.LineNo,
					Line:   strings.Join(ins.Words, " "),
					Err:    ErrLabelMissing(value.Label),
				}
				return
			}
			*value = Operand{Field: VALUE_NEXT, Next: uint16(ip)}
		}
	}

	return
}

// Parse parses an input stream into a Program containing instructions.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	asm.Instruction = asm.Instruction[:0]
	if asm.Label == nil {
		asm.Label = make(map[string]int, 16)
	}
	clear(asm.Label)

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		err = asm.parseLine(line, lineno)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: strings.TrimSpace(line), Err: err}
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrSyntax{LineNo: lineno + 1, Err: err}
		return
	}

	err = asm.link()
	if err != nil {
		return
	}

	prog = &Program{
		Instructions: slices.Clone(asm.Instruction),
		Labels:       maps.Clone(asm.Label),
	}

	return
}
