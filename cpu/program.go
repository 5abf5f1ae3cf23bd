package cpu

import (
	"iter"
	"slices"

	"github.com/ezrec/dcpu16/internal"
)

// Program is an assembled and linked instruction listing.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int
}

// Debug locates the instruction covering a word address.
type Debug struct {
	*Instruction
	Index int
}

// Debug finds the instruction that encodes the word at ip.
func (prog *Program) Debug(ip uint16) (dbg Debug) {
	for n, ins := range prog.Instructions {
		if int(ip) >= ins.Ip && int(ip) < ins.Ip+ins.Size() {
			dbg = Debug{
				Instruction: &prog.Instructions[n],
				Index:       int(ip) - ins.Ip,
			}
			break
		}
	}

	return
}

// Binary returns the program as a flat word stream.
func (prog *Program) Binary() (words []uint16) {
	for _, word := range prog.Codes() {
		words = append(words, word)
	}

	return
}

// Codes iterates over the program words, with their addresses.
func (prog *Program) Codes() iter.Seq2[uint16, uint16] {
	seqs := make([]iter.Seq[uint16], 0, len(prog.Instructions))
	for _, ins := range prog.Instructions {
		seqs = append(seqs, ins.Codes())
	}

	return internal.IterSeqEnumerate[uint16](0, internal.IterSeqConcat(seqs...))
}

// Size returns the program length in words.
func (prog *Program) Size() (size int) {
	if len(prog.Instructions) == 0 {
		return
	}

	last := prog.Instructions[len(prog.Instructions)-1]
	size = last.Ip + last.Size()
	return
}

// LabelsAt returns the sorted labels that point at ip.
func (prog *Program) LabelsAt(ip uint16) (labels []string) {
	for label, addr := range prog.Labels {
		if addr == int(ip) {
			labels = append(labels, label)
		}
	}
	slices.Sort(labels)
	return
}
