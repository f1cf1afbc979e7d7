package chr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patternTile() Tile {
	var tile Tile
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			tile[y][x] = uint8((x + y*3) % 4)
		}
	}
	return tile
}

func solidTile(v uint8) Tile {
	var tile Tile
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			tile[y][x] = v
		}
	}
	return tile
}

func TestRoundTrip(t *testing.T) {
	s := NewSheet(nil)
	s.SetTile(2, patternTile())

	assert.Equal(t, patternTile(), s.Tile(2))
	assert.Len(t, s.Bytes(), 3*TileBytes)
}

func TestPackingBitOrder(t *testing.T) {
	s := NewSheet(nil)
	s.SetTile(0, solidTile(3))
	assert.Equal(t, bytes.Repeat([]byte{0xff}, 16), s.Bytes())

	s = NewSheet(nil)
	s.SetTile(0, solidTile(1))
	assert.Equal(t, append(bytes.Repeat([]byte{0xff}, 8), make([]byte, 8)...), s.Bytes())
}

func TestTileOutOfRange(t *testing.T) {
	s := NewSheet(bytes.Repeat([]byte{0xff}, TileBytes))

	var zero Tile
	for _, i := range []int{-1, 1, 100} {
		assert.Equal(t, zero, s.Tile(i))
	}
}

func TestSetTileGrowth(t *testing.T) {
	s := NewSheet(nil)
	s.SetTile(0, solidTile(2))
	s.SetTile(3, patternTile())

	require.Len(t, s.Bytes(), 4*TileBytes)

	var zero Tile
	assert.Equal(t, solidTile(2), s.Tile(0))
	assert.Equal(t, zero, s.Tile(1))
	assert.Equal(t, zero, s.Tile(2))
	assert.Equal(t, patternTile(), s.Tile(3))
}

func TestSetTileMasksColors(t *testing.T) {
	tile := solidTile(0)
	tile[0][0] = 7
	tile[0][1] = 5

	s := NewSheet(nil)
	s.SetTile(0, tile)

	got := s.Tile(0)
	assert.Equal(t, uint8(3), got[0][0])
	assert.Equal(t, uint8(1), got[0][1])
}

func TestSetTileNegativeIndex(t *testing.T) {
	s := NewSheet(nil)
	s.SetTile(-1, solidTile(3))
	assert.Empty(t, s.Bytes())
}

func TestTileCountPartialTrailingBytes(t *testing.T) {
	assert.Equal(t, 0, NewSheet(make([]byte, 15)).TileCount())
	assert.Equal(t, 2, NewSheet(make([]byte, 40)).TileCount())
}
