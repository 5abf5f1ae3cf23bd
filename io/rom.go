package io

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

const (
	ROM_START = "{{" // Start of the ROM image data.
	ROM_END   = "}}" // End of the ROM image data.
)

// Rom is a memory image, in the text format shared by the assembler and
// the emulator. All text in a ROM file is ignored except for hexadecimal
// digits found between the first {{ and the first }}. Each group of four
// digits is one big endian word.
type Rom struct {
	Data []uint16
}

// isHexDigit returns true for 0-9, A-F and a-f.
func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'A' && c <= 'F':
		return true
	case c >= 'a' && c <= 'f':
		return true
	}
	return false
}

// Unmarshal replaces the ROM data with the image in text.
func (rom *Rom) Unmarshal(text []byte) (err error) {
	start := bytes.Index(text, []byte(ROM_START))
	end := bytes.Index(text, []byte(ROM_END))

	if start < 0 || end < 0 {
		err = errors.Join(ErrRomFormat, ErrRomMarkerMissing)
		return
	}

	if start > end {
		err = errors.Join(ErrRomFormat, ErrRomMarkerOrder)
		return
	}

	digits := bytes.Map(func(r rune) rune {
		if r < 0x80 && isHexDigit(byte(r)) {
			return r
		}
		return -1
	}, text[start+len(ROM_START):end])

	if len(digits)%4 != 0 {
		err = errors.Join(ErrRomFormat, ErrRomDigitCount(len(digits)))
		return
	}

	raw := make([]byte, len(digits)/2)
	_, err = hex.Decode(raw, digits)
	if err != nil {
		err = errors.Join(ErrRomFormat, err)
		return
	}

	rom.Data = make([]uint16, 0, len(raw)/2)
	for n := 0; n < len(raw); n += 2 {
		rom.Data = append(rom.Data, binary.BigEndian.Uint16(raw[n:]))
	}

	return
}

// Marshal writes the ROM image, one word per line.
func (rom *Rom) Marshal(w io.Writer) (err error) {
	var buff bytes.Buffer

	buff.WriteString(ROM_START + "\n")
	for _, word := range rom.Data {
		fmt.Fprintf(&buff, "%04x\n", word)
	}
	buff.WriteString(ROM_END + "\n")

	_, err = buff.WriteTo(w)
	return
}

// LoadRom reads and unmarshals a ROM image file.
func LoadRom(filesys fs.FS, name string) (rom *Rom, err error) {
	text, err := fs.ReadFile(filesys, name)
	if err != nil {
		err = errors.Join(ErrFileOpen, err)
		return
	}

	rom = &Rom{}
	err = rom.Unmarshal(text)
	if err != nil {
		rom = nil
		err = &ErrRomFile{Name: name, Err: err}
	}

	return
}
