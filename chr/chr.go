/*
Package chr implements a decoder and encoder for the NES CHR tile format.

A CHR file is a raw stream of 8 by 8 pixel tiles with two bits per pixel.
Each tile occupies 16 bytes: the first 8 bytes hold the low bit plane,
one byte per row, and the last 8 bytes hold the high bit plane. Bit 7 of
each plane byte is the leftmost pixel of its row and a pixel's color
index is the high bit shifted up by one, ORed with the low bit. There is
no header or length field so a well-formed file is any multiple of 16
bytes.
*/
package chr

import "image/color"

const (
	tileWidth  = 8
	tileHeight = tileWidth
	planeBytes = tileHeight
	numColors  = 4

	// TileBytes is the packed size of a single tile
	TileBytes = 2 * planeBytes
)

// DefaultPalette holds the four built-in colors used whenever no palette
// is supplied.
var DefaultPalette = color.Palette{
	color.RGBA{84, 84, 84, 0xff},
	color.RGBA{0, 30, 116, 0xff},
	color.RGBA{8, 16, 144, 0xff},
	color.RGBA{48, 0, 136, 0xff},
}

// Tile is a single 8 by 8 tile of 2-bit color indices.
type Tile [tileHeight][tileWidth]uint8

// Sheet is an ordered sequence of tiles backed by one contiguous buffer
// in packed CHR form. The zero value is an empty sheet.
type Sheet struct {
	data []byte
}

// NewSheet returns a Sheet backed by data. The buffer is used directly,
// not copied, so mutating the sheet mutates data.
func NewSheet(data []byte) *Sheet {
	return &Sheet{data: data}
}

// TileCount returns the number of whole tiles in the sheet. A trailing
// fragment shorter than one tile contributes no tile.
func (s *Sheet) TileCount() int {
	return len(s.data) / TileBytes
}

// Bytes returns the packed backing buffer.
func (s *Sheet) Bytes() []byte {
	return s.data
}

// Tile decodes and returns the tile at index i. An out of range index
// returns the zero Tile; this is a deliberate permissive default rather
// than an error so callers can always paint something.
func (s *Sheet) Tile(i int) Tile {
	var t Tile
	if i < 0 || i >= s.TileCount() {
		return t
	}

	offset := i * TileBytes
	for y := 0; y < tileHeight; y++ {
		low, high := s.data[offset+y], s.data[offset+y+planeBytes]
		for x := 0; x < tileWidth; x++ {
			bit := uint(tileWidth - 1 - x)
			t[y][x] = (high>>bit&1)<<1 | low>>bit&1
		}
	}

	return t
}

// SetTile encodes t at index i, rewriting the 16 bytes in place. If i is
// beyond the current extent the buffer grows, zero-filled, to exactly
// 16*(i+1) bytes; it is never truncated. Color values are taken mod 4.
// A negative index is ignored.
func (s *Sheet) SetTile(i int, t Tile) {
	if i < 0 {
		return
	}

	if need := (i + 1) * TileBytes; need > len(s.data) {
		s.data = append(s.data, make([]byte, need-len(s.data))...)
	}

	offset := i * TileBytes
	for y := 0; y < tileHeight; y++ {
		var low, high byte
		for x := 0; x < tileWidth; x++ {
			bit := uint(tileWidth - 1 - x)
			c := t[y][x] & (numColors - 1)
			low |= (c & 1) << bit
			high |= (c >> 1) << bit
		}
		s.data[offset+y] = low
		s.data[offset+y+planeBytes] = high
	}
}
