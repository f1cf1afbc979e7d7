package chr

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileImage(t *testing.T) {
	tile := patternTile()
	s := NewSheet(nil)
	s.SetTile(0, tile)

	m := s.TileImage(0, DefaultPalette, 3)
	assert.Equal(t, image.Rect(0, 0, 24, 24), m.Bounds())

	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			assert.Equal(t, DefaultPalette[tile[y/3][x/3]], m.At(x, y))
		}
	}
}

func TestImageEmptySheet(t *testing.T) {
	m := NewSheet(nil).Image(16, 2, nil)
	assert.Equal(t, image.Rect(0, 0, 64, 64), m.Bounds())
}

func TestImagePaletteWraparound(t *testing.T) {
	p := color.Palette{color.RGBA{0xaa, 0x55, 0x11, 0xff}}

	s := NewSheet(nil)
	s.SetTile(0, patternTile())

	m := s.Image(4, 1, p)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, p[0], m.At(x, y))
		}
	}
}

func TestImageLayout(t *testing.T) {
	s := NewSheet(nil)
	s.SetTile(0, solidTile(1))
	s.SetTile(1, solidTile(2))
	s.SetTile(2, solidTile(3))

	m := s.Image(2, 1, DefaultPalette)
	assert.Equal(t, image.Rect(0, 0, 16, 16), m.Bounds())

	assert.Equal(t, DefaultPalette[1], m.At(0, 0))
	assert.Equal(t, DefaultPalette[2], m.At(8, 0))
	assert.Equal(t, DefaultPalette[3], m.At(0, 8))

	// Canvas past the last tile stays at the zero value
	assert.Equal(t, color.RGBA{}, m.At(8, 8))
}
