package emulator

import (
	"github.com/ezrec/dcpu16/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrUntil is a stop condition that did not evaluate to a value.
type ErrUntil string

func (err ErrUntil) Error() string {
	return f("stop condition '%v' has no value", string(err))
}
