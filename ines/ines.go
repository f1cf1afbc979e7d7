/*
Package ines implements a read-only parser for the iNES ROM container
format.

A ROM image starts with a 16 byte header: the magic sequence "NES\x1a",
the PRG ROM size in 16 KB units, the CHR ROM size in 8 KB units, two
flag bytes and 8 bytes of padding. An optional 512 byte trainer follows,
then the PRG ROM and CHR ROM payloads. CHR ROM is addressed in 8 KB
banks; a declared size of zero means the cartridge uses CHR RAM and the
file carries no graphics data, which is valid.
*/
package ines

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

const (
	headerSize  = 16
	trainerSize = 512

	// PRGBankSize is the size of one PRG ROM bank
	PRGBankSize = 16384
	// CHRBankSize is the size of one CHR ROM bank
	CHRBankSize = 8192
)

var magic = []byte{'N', 'E', 'S', 0x1a}

var (
	// ErrTruncatedHeader is returned when fewer than 16 header bytes are available
	ErrTruncatedHeader = errors.New("ines: truncated header")
	// ErrBadMagic is returned when the header does not start with "NES\x1a"
	ErrBadMagic = errors.New("ines: bad magic")
	// ErrTruncatedTrainer is returned when the declared trainer is incomplete
	ErrTruncatedTrainer = errors.New("ines: truncated trainer")
	// ErrTruncatedPRG is returned when the declared PRG ROM is incomplete
	ErrTruncatedPRG = errors.New("ines: truncated PRG ROM")
	// ErrTruncatedCHR is returned when the declared CHR ROM is incomplete
	ErrTruncatedCHR = errors.New("ines: truncated CHR ROM")
	// ErrBankIndex is returned by Bank for an out of range index
	ErrBankIndex = errors.New("ines: CHR bank index out of range")
)

// Mirroring is the nametable mirroring mode declared by the header.
type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
)

func (m Mirroring) String() string {
	if m == MirrorVertical {
		return "Vertical"
	}
	return "Horizontal"
}

// ROM is a parsed iNES image. It is immutable once decoded; the tool
// only ever reads ROMs to extract their CHR banks.
type ROM struct {
	prg     []byte
	banks   [][]byte
	trainer bool
	mapper  byte
	mirror  Mirroring
}

// Decode parses an iNES image from r. The parse is all or nothing: any
// structural violation returns an error wrapping one of the package
// sentinels and no partial ROM.
func Decode(r io.Reader) (*ROM, error) {
	var hdr [headerSize]byte
	if n, err := io.ReadFull(r, hdr[:]); err != nil {
		if err != io.EOF && err != io.ErrUnexpectedEOF {
			return nil, err
		}
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrTruncatedHeader, headerSize, n)
	}

	if !bytes.Equal(hdr[:4], magic) {
		return nil, fmt.Errorf("%w: % x", ErrBadMagic, hdr[:4])
	}

	prgSize := int(hdr[4]) * PRGBankSize
	chrSize := int(hdr[5]) * CHRBankSize

	rom := &ROM{
		trainer: hdr[6]&0x04 != 0,
		mapper:  hdr[6]>>4 | hdr[7]&0xf0,
		mirror:  Mirroring(hdr[6] & 0x01),
	}

	if rom.trainer {
		var trainer [trainerSize]byte
		if n, err := io.ReadFull(r, trainer[:]); err != nil {
			if err != io.EOF && err != io.ErrUnexpectedEOF {
				return nil, err
			}
			return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrTruncatedTrainer, trainerSize, n)
		}
	}

	rom.prg = make([]byte, prgSize)
	if n, err := io.ReadFull(r, rom.prg); err != nil {
		if err != io.EOF && err != io.ErrUnexpectedEOF {
			return nil, err
		}
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrTruncatedPRG, prgSize, n)
	}

	if chrSize > 0 {
		chr := make([]byte, chrSize)
		if n, err := io.ReadFull(r, chr); err != nil {
			if err != io.EOF && err != io.ErrUnexpectedEOF {
				return nil, err
			}
			return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrTruncatedCHR, chrSize, n)
		}

		rom.banks = make([][]byte, 0, chrSize/CHRBankSize)
		for offset := 0; offset < chrSize; offset += CHRBankSize {
			rom.banks = append(rom.banks, chr[offset:offset+CHRBankSize])
		}
	}

	return rom, nil
}

// PRGSize returns the PRG ROM size in bytes.
func (r *ROM) PRGSize() int {
	return len(r.prg)
}

// CHRSize returns the CHR ROM size in bytes, zero for CHR RAM.
func (r *ROM) CHRSize() int {
	return len(r.banks) * CHRBankSize
}

// PRG returns the PRG ROM payload.
func (r *ROM) PRG() []byte {
	return r.prg
}

// Trainer reports whether the image declared a trainer.
func (r *ROM) Trainer() bool {
	return r.trainer
}

// Mapper returns the mapper number assembled from the header flag
// nibbles.
func (r *ROM) Mapper() byte {
	return r.mapper
}

// Mirroring returns the declared nametable mirroring mode.
func (r *ROM) Mirroring() Mirroring {
	return r.mirror
}

// HasCHR reports whether the image carries any CHR ROM data.
func (r *ROM) HasCHR() bool {
	return len(r.banks) > 0
}

// BankCount returns the number of 8 KB CHR banks, zero for CHR RAM.
func (r *ROM) BankCount() int {
	return len(r.banks)
}

// Bank returns the CHR bank at index i. Unlike tile decoding there is no
// permissive fallback here; an out of range index, including any index
// on a CHR RAM image, returns an error wrapping ErrBankIndex.
func (r *ROM) Bank(i int) ([]byte, error) {
	if i < 0 || i >= len(r.banks) {
		return nil, fmt.Errorf("%w: %d", ErrBankIndex, i)
	}
	return r.banks[i], nil
}

// CHR returns all CHR banks concatenated in order.
func (r *ROM) CHR() []byte {
	b := make([]byte, 0, r.CHRSize())
	for _, bank := range r.banks {
		b = append(b, bank...)
	}
	return b
}
