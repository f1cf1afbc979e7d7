package chr

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

// Encode writes the packed form of s to w.
func Encode(w io.Writer, s *Sheet) error {
	_, err := w.Write(s.Bytes())
	return err
}

// EncodeImage converts m to CHR tiles and writes them to w. The image is
// reduced to at most four colors, quantizing if necessary, and its
// dimensions are snapped down to whole tiles measured from the top-left
// corner.
func EncodeImage(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() < tileWidth || b.Dy() < tileHeight {
		return errors.New("chr: image is smaller than one tile")
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil {
		if cp, ok := m.ColorModel().(color.Palette); ok && len(cp) <= numColors {
			pm = image.NewPaletted(b, cp)
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					pm.Set(x, y, cp.Convert(m.At(x, y)))
				}
			}
		}
	}
	if pm == nil || len(pm.Palette) > numColors {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, numColors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}

	tilesX := pm.Rect.Dx() / tileWidth
	tilesY := pm.Rect.Dy() / tileHeight

	s := NewSheet(make([]byte, 0, tilesX*tilesY*TileBytes))
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			var t Tile
			for y := 0; y < tileHeight; y++ {
				for x := 0; x < tileWidth; x++ {
					t[y][x] = pm.ColorIndexAt(tx*tileWidth+x, ty*tileHeight+y)
				}
			}
			s.SetTile(ty*tilesX+tx, t)
		}
	}

	return Encode(w, s)
}
