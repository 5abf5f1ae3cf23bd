package io

import (
	"errors"

	"github.com/ezrec/dcpu16/translate"
)

var f = translate.From

var (
	// ROM errors
	ErrFileOpen         = errors.New(f("could not open file"))
	ErrRomFormat        = errors.New(f("invalid rom file"))
	ErrRomMarkerMissing = errors.New(f("missing {{ or }}"))
	ErrRomMarkerOrder   = errors.New(f("{{ after }}"))
)

// ErrRomDigitCount is the number of hex digits in a ROM that is not a
// whole number of words.
type ErrRomDigitCount int

func (err ErrRomDigitCount) Error() string {
	return f("%d hex digits is not a whole number of words", int(err))
}

// ErrRomFile indicates the ROM file that failed to load.
type ErrRomFile struct {
	Name string
	Err  error
}

func (err *ErrRomFile) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrRomFile) Unwrap() error {
	return err.Err
}
