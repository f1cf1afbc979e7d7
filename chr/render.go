package chr

import (
	"image"
	"image/color"
)

const (
	// Dimensions of the stand-in returned when rendering an empty sheet
	placeholderSize = 64

	sheetTilesPerRow = 16
)

// TileImage renders the tile at index i into an RGBA image of
// 8*scale by 8*scale pixels, replicating each pixel into a scale by
// scale block. Color indices wrap around short palettes rather than
// failing; a nil or empty palette falls back to DefaultPalette.
func (s *Sheet) TileImage(i int, p color.Palette, scale int) *image.RGBA {
	if len(p) == 0 {
		p = DefaultPalette
	}
	if scale < 1 {
		scale = 1
	}

	m := image.NewRGBA(image.Rect(0, 0, tileWidth*scale, tileHeight*scale))
	drawTile(m, s.Tile(i), 0, 0, p, scale)

	return m
}

// Image renders every tile in row-major order, tilesPerRow to a row, at
// the given scale. Canvas beyond the last tile is left at the zero
// value. An empty sheet yields a 64 by 64 placeholder rather than a
// zero-area image so callers always have something to display.
func (s *Sheet) Image(tilesPerRow, scale int, p color.Palette) *image.RGBA {
	if len(p) == 0 {
		p = DefaultPalette
	}
	if tilesPerRow < 1 {
		tilesPerRow = sheetTilesPerRow
	}
	if scale < 1 {
		scale = 1
	}

	count := s.TileCount()
	if count == 0 {
		return image.NewRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	}

	rows := (count + tilesPerRow - 1) / tilesPerRow
	m := image.NewRGBA(image.Rect(0, 0, tilesPerRow*tileWidth*scale, rows*tileHeight*scale))

	for i := 0; i < count; i++ {
		ox := i % tilesPerRow * tileWidth * scale
		oy := i / tilesPerRow * tileHeight * scale
		drawTile(m, s.Tile(i), ox, oy, p, scale)
	}

	return m
}

func drawTile(m *image.RGBA, t Tile, ox, oy int, p color.Palette, scale int) {
	for y := 0; y < tileHeight; y++ {
		for x := 0; x < tileWidth; x++ {
			c := p[int(t[y][x])%len(p)]
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					m.Set(ox+x*scale+sx, oy+y*scale+sy, c)
				}
			}
		}
	}
}
