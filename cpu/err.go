package cpu

import (
	"errors"

	"github.com/ezrec/dcpu16/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrInvalidValueField = errors.New(f("invalid value field"))
	ErrWriteToLiteral    = errors.New(f("attempt to set a literal"))
	ErrInvalidNonBasic   = errors.New(f("invalid non-basic instruction"))

	// Assembler errors
	ErrInvalidNumber       = errors.New(f("invalid number"))
	ErrConstantTooLarge    = errors.New(f("constant too large"))
	ErrInvalidRegisterName = errors.New(f("invalid register name"))
	ErrExpectedRegister    = errors.New(f("expected register"))
	ErrInvalidLabelSyntax  = errors.New(f("invalid label syntax"))
	ErrEmptyArgument       = errors.New(f("empty argument"))
	ErrWrongArgumentCount  = errors.New(f("wrong number of arguments"))
	ErrInvalidOpcode       = errors.New(f("invalid opcode"))
)

// ErrLabelMissing is returned when a referenced label is never defined.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrOpcode identifies the instruction word that raised a cpu error.
type ErrOpcode struct {
	Ip   uint16
	Word uint16
}

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x at 0x%04x", eo.Word, eo.Ip)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Unwrap() error {
	return ErrInvalidNumber
}
