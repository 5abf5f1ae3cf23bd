package io_test

import (
	"bytes"
	"io/fs"
	"testing/fstest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/dcpu16/io"
)

var _ = Describe("Rom", func() {
	var rom *io.Rom

	BeforeEach(func() {
		rom = &io.Rom{}
	})

	Describe("Unmarshal", func() {
		It("should load big endian words", func() {
			err := rom.Unmarshal([]byte("{{7c01 0030}}"))

			Expect(err).ToNot(HaveOccurred())
			Expect(rom.Data).To(Equal([]uint16{0x7c01, 0x0030}))
		})

		It("should ignore text outside the markers", func() {
			text := "ROM for sample.dasm 1234\n{{\n7c01\n0030\n}}\ntrailing ab12\n"
			err := rom.Unmarshal([]byte(text))

			Expect(err).ToNot(HaveOccurred())
			Expect(rom.Data).To(Equal([]uint16{0x7c01, 0x0030}))
		})

		It("should ignore non hex characters between the markers", func() {
			err := rom.Unmarshal([]byte("{{ 7C:01, 00-30 ; xyz é ABCD }}"))

			Expect(err).ToNot(HaveOccurred())
			Expect(rom.Data).To(Equal([]uint16{0x7c01, 0x0030, 0xabcd}))
		})

		It("should only use the first block", func() {
			err := rom.Unmarshal([]byte("{{1234}} {{5678}}"))

			Expect(err).ToNot(HaveOccurred())
			Expect(rom.Data).To(Equal([]uint16{0x1234}))
		})

		It("should load an empty block", func() {
			rom.Data = []uint16{1, 2, 3}
			err := rom.Unmarshal([]byte("{{}}"))

			Expect(err).ToNot(HaveOccurred())
			Expect(rom.Data).To(BeEmpty())
		})

		It("should reject a partial word", func() {
			err := rom.Unmarshal([]byte("{{7c01 003}}"))

			Expect(err).To(MatchError(io.ErrRomFormat))
			Expect(err).To(MatchError(io.ErrRomDigitCount(7)))
		})

		It("should reject a missing start marker", func() {
			err := rom.Unmarshal([]byte("7c01 0030}}"))

			Expect(err).To(MatchError(io.ErrRomFormat))
			Expect(err).To(MatchError(io.ErrRomMarkerMissing))
		})

		It("should reject a missing end marker", func() {
			err := rom.Unmarshal([]byte("{{7c01 0030"))

			Expect(err).To(MatchError(io.ErrRomMarkerMissing))
		})

		It("should reject markers out of order", func() {
			err := rom.Unmarshal([]byte("}} 7c01 {{"))

			Expect(err).To(MatchError(io.ErrRomFormat))
			Expect(err).To(MatchError(io.ErrRomMarkerOrder))
		})
	})

	Describe("Marshal", func() {
		It("should write one word per line", func() {
			rom.Data = []uint16{0x7c01, 0x0030, 0xffff}

			var buff bytes.Buffer
			Expect(rom.Marshal(&buff)).To(Succeed())
			Expect(buff.String()).To(Equal("{{\n7c01\n0030\nffff\n}}\n"))
		})

		It("should be read back by Unmarshal", func() {
			rom.Data = []uint16{0x0000, 0x1234, 0xabcd, 0x8000}

			var buff bytes.Buffer
			Expect(rom.Marshal(&buff)).To(Succeed())

			other := &io.Rom{}
			Expect(other.Unmarshal(buff.Bytes())).To(Succeed())
			Expect(other.Data).To(Equal(rom.Data))
		})
	})

	Describe("LoadRom", func() {
		var filesys fstest.MapFS

		BeforeEach(func() {
			filesys = fstest.MapFS{
				"example.rom": &fstest.MapFile{Data: []byte("{{ 7c01 0030 }}\n")},
				"broken.rom":  &fstest.MapFile{Data: []byte("{{ 7c01 003 }}\n")},
			}
		})

		It("should load a ROM file", func() {
			rom, err := io.LoadRom(filesys, "example.rom")

			Expect(err).ToNot(HaveOccurred())
			Expect(rom.Data).To(Equal([]uint16{0x7c01, 0x0030}))
		})

		It("should report a missing file", func() {
			rom, err := io.LoadRom(filesys, "missing.rom")

			Expect(rom).To(BeNil())
			Expect(err).To(MatchError(io.ErrFileOpen))
			Expect(err).To(MatchError(fs.ErrNotExist))
		})

		It("should name the broken file", func() {
			rom, err := io.LoadRom(filesys, "broken.rom")

			Expect(rom).To(BeNil())
			Expect(err).To(MatchError(io.ErrRomFormat))

			var romErr *io.ErrRomFile
			Expect(err).To(BeAssignableToTypeOf(romErr))
			Expect(err.Error()).To(HavePrefix("broken.rom: "))
		})
	})
})
