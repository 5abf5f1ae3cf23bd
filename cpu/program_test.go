package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleProgram() *Program {
	return &Program{
		Instructions: []Instruction{
			{LineNo: 1, Ip: 0, Words: []string{"SET", "A,", "0x10"},
				Op: OP_SET, A: MakeRegister(REG_A), B: MakeLiteral(0x10)},
			{LineNo: 2, Ip: 1, Words: []string{"SET", "B,", "0x20"},
				Op: OP_SET, A: MakeRegister(REG_B), B: MakeLiteral(0x20)},
			{LineNo: 4, Ip: 3, Words: []string{"ADD", "[0x1000],", "0x30"},
				Op: OP_ADD, A: Operand{Field: VALUE_MEM_NEXT, Next: 0x1000}, B: MakeLiteral(0x30)},
		},
		Labels: map[string]int{"start": 0, "add": 3, "also": 3},
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := sampleProgram()

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Instruction)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(1)
	assert.NotNil(dbg.Instruction)
	assert.Equal(2, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(2)
	assert.NotNil(dbg.Instruction)
	assert.Equal(2, dbg.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(5)
	assert.NotNil(dbg.Instruction)
	assert.Equal(4, dbg.LineNo)
	assert.Equal(2, dbg.Index)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := sampleProgram()

	dbg := prog.Debug(6)
	assert.Nil(dbg.Instruction)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := sampleProgram()

	assert.Equal([]uint16{
		0xc001,
		0x7c11, 0x0020,
		0x7de2, 0x1000, 0x0030,
	}, prog.Binary())
	assert.Equal(6, prog.Size())
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := sampleProgram()

	var ips []uint16
	for ip, word := range prog.Codes() {
		ips = append(ips, ip)
		if ip == 4 {
			assert.Equal(uint16(0x1000), word)
			break
		}
	}
	assert.Equal([]uint16{0, 1, 2, 3, 4}, ips)
}

func TestProgram_LabelsAt(t *testing.T) {
	assert := assert.New(t)

	prog := sampleProgram()

	assert.Equal([]string{"start"}, prog.LabelsAt(0))
	assert.Equal([]string{"add", "also"}, prog.LabelsAt(3))
	assert.Empty(prog.LabelsAt(1))
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	prog := sampleProgram()
	words := prog.Binary()
	fetch := func(ip uint16) uint16 {
		if int(ip) < len(words) {
			return words[ip]
		}
		return 0
	}

	for _, expected := range prog.Instructions {
		ins := Decode(fetch, uint16(expected.Ip))
		assert.Equal(expected.Op, ins.Op)
		assert.Equal(expected.A, ins.A)
		assert.Equal(expected.B, ins.B)
		assert.Equal(expected.Size(), ins.Size())
	}

	assert.Equal("ADD [0x1000], 0x0030", Decode(fetch, 3).String())
	assert.Equal("HLT", Decode(fetch, 6).String())

	jsr := MakeNonBasic(NB_OP_JSR, MakeLiteral(0x1234))
	assert.Equal("JSR 0x1234", jsr.String())
	assert.Equal(2, jsr.Size())
}
