package chr

import (
	"image"
	"io"
	"io/ioutil"
)

// Decode reads packed tile data from r until EOF and returns it as a
// Sheet. Any trailing fragment shorter than one tile is kept in the
// backing buffer but contributes no tile.
func Decode(r io.Reader) (*Sheet, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewSheet(b), nil
}

// DecodeConfig returns the color model and dimensions of the sheet laid
// out sixteen tiles per row at scale 1, without decoding any tiles. An
// empty stream reports the same placeholder dimensions that rendering an
// empty sheet produces.
func DecodeConfig(r io.Reader) (image.Config, error) {
	n, err := io.Copy(ioutil.Discard, r)
	if err != nil {
		return image.Config{}, err
	}

	count := int(n) / TileBytes
	if count == 0 {
		return image.Config{
			ColorModel: DefaultPalette,
			Width:      placeholderSize,
			Height:     placeholderSize,
		}, nil
	}

	rows := (count + sheetTilesPerRow - 1) / sheetTilesPerRow
	return image.Config{
		ColorModel: DefaultPalette,
		Width:      sheetTilesPerRow * tileWidth,
		Height:     rows * tileHeight,
	}, nil
}
