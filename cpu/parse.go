package cpu

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ParseNumber parses a 0x prefixed hexadecimal, or a decimal, 16-bit number.
func ParseNumber(word string) (value uint16, err error) {
	base := 10
	digits := word
	if strings.HasPrefix(word, "0x") {
		base = 16
		digits = word[2:]
	}

	if len(digits) == 0 || digits[0] == '+' || digits[0] == '-' {
		err = ErrParseNumber(word)
		return
	}

	v64, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = ErrConstantTooLarge
		} else {
			err = ErrParseNumber(word)
		}
		return
	}

	if v64 > 0xffff {
		err = ErrConstantTooLarge
		return
	}

	value = uint16(v64)
	return
}

// ParseRegister parses a single character register name.
func ParseRegister(name byte) (reg CodeReg, err error) {
	switch name {
	case 'A':
		reg = REG_A
	case 'B':
		reg = REG_B
	case 'C':
		reg = REG_C
	case 'X':
		reg = REG_X
	case 'Y':
		reg = REG_Y
	case 'Z':
		reg = REG_Z
	case 'I':
		reg = REG_I
	case 'J':
		reg = REG_J
	default:
		err = ErrInvalidRegisterName
	}
	return
}

// ValidLabel returns true if the word is a legal label name.
func ValidLabel(word string) bool {
	if len(word) == 0 {
		return false
	}
	if word[0] >= '0' && word[0] <= '9' {
		return false
	}
	for _, c := range word {
		switch {
		case c < unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c)):
		case c == '_', c == '-', c == '$':
		default:
			return false
		}
	}
	return true
}

// stripBrackets removes all square brackets from a word.
func stripBrackets(word string) string {
	return strings.NewReplacer("[", "", "]", "").Replace(word)
}

// MakeOperand classifies a single argument word as an operand.
func MakeOperand(word string) (value Operand, err error) {
	field, ok := keywordMap[word]
	if ok {
		value = Operand{Field: field}
		return
	}

	if len(word) == 1 {
		reg, reg_err := ParseRegister(word[0])
		if reg_err == nil {
			value = MakeRegister(reg)
			return
		}
	}

	if len(word) == 3 && word[0] == '[' && word[2] == ']' {
		reg, reg_err := ParseRegister(word[1])
		if reg_err == nil {
			value = Operand{Field: VALUE_REG_MEM + CodeValue(reg)}
			return
		}
	}

	if strings.Contains(word, "+") {
		parts := strings.Split(stripBrackets(word), "+")
		if len(parts) != 2 {
			err = ErrExpectedRegister
			return
		}

		isReg := func(part string) bool {
			if len(part) != 1 {
				return false
			}
			_, reg_err := ParseRegister(part[0])
			return reg_err == nil
		}

		var reg_part, num_part string
		switch {
		case isReg(parts[0]) && !isReg(parts[1]):
			reg_part, num_part = parts[0], parts[1]
		case isReg(parts[1]) && !isReg(parts[0]):
			reg_part, num_part = parts[1], parts[0]
		default:
			err = ErrExpectedRegister
			return
		}

		reg, _ := ParseRegister(reg_part[0])
		var next uint16
		next, err = ParseNumber(num_part)
		if err != nil {
			return
		}

		value = Operand{Field: VALUE_REG_NEXT + CodeValue(reg), Next: next}
		return
	}

	if strings.Contains(word, "[") {
		var next uint16
		next, err = ParseNumber(stripBrackets(word))
		if err != nil {
			return
		}
		value = Operand{Field: VALUE_MEM_NEXT, Next: next}
		return
	}

	number, err := ParseNumber(word)
	switch {
	case err == nil:
		value = MakeLiteral(number)
	case errors.Is(err, ErrConstantTooLarge):
		return
	case ValidLabel(word):
		err = nil
		value = MakeLabel(word)
	default:
		err = ErrInvalidLabelSyntax
	}

	return
}

// CompileLine builds an instruction from a line with comments and labels
// already removed.
func CompileLine(line string) (ins Instruction, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		err = ErrInvalidOpcode
		return
	}

	mnemonic := words[0]

	var args []string
	if len(words) > 1 {
		args = strings.Split(strings.Join(words[1:], ""), ",")
	}

	for _, arg := range args {
		if len(arg) == 0 {
			err = ErrEmptyArgument
			return
		}
	}

	if mnemonic == NB_OP_JSR.String() {
		if len(args) != 1 {
			err = ErrWrongArgumentCount
			return
		}
		var b Operand
		b, err = MakeOperand(args[0])
		if err != nil {
			return
		}
		ins = MakeNonBasic(NB_OP_JSR, b)
		ins.Words = words
		return
	}

	if len(args) != 2 {
		err = ErrWrongArgumentCount
		return
	}

	op, ok := opMap[mnemonic]
	if !ok {
		err = ErrInvalidOpcode
		return
	}

	a, err := MakeOperand(args[0])
	if err != nil {
		return
	}

	b, err := MakeOperand(args[1])
	if err != nil {
		return
	}

	ins = MakeBasic(op, a, b)
	ins.Words = words

	return
}

// opMap maps the basic opcode mnemonics.
var opMap = map[string]CodeOp{
	"SET": OP_SET,
	"ADD": OP_ADD,
	"SUB": OP_SUB,
	"MUL": OP_MUL,
	"DIV": OP_DIV,
	"MOD": OP_MOD,
	"SHL": OP_SHL,
	"SHR": OP_SHR,
	"AND": OP_AND,
	"BOR": OP_BOR,
	"XOR": OP_XOR,
	"IFE": OP_IFE,
	"IFN": OP_IFN,
	"IFG": OP_IFG,
	"IFB": OP_IFB,
}
