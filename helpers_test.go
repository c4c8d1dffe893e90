package dicemosaic

import (
	"image"
	"image/color"
)

func uniformGray(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// flatTiles returns tiles where face v is filled with gray 40*v.
func flatTiles(size int) TileSet {
	var ts TileSet
	for i := 0; i < Faces; i++ {
		ts[i] = uniformGray(size, size, uint8(40*(i+1)))
	}
	return ts
}

func tileShade(v int) color.Gray {
	return color.Gray{Y: uint8(40 * v)}
}

func bandMapOf(rows [][]uint8) *BandMap {
	bm := newBandMap(len(rows[0]), len(rows))
	for y, row := range rows {
		copy(bm.Bands[y*bm.W:], row)
	}
	return bm
}
