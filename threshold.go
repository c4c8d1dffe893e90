package dicemosaic

import (
	"image"
	"image/color"
)

// Threshold splits the luminance range of img into six equal integer bands
// and assigns every pixel the highest band whose lower edge it reaches.
//
// Band edges are bottom + i*delta with delta = (top-bottom)/6, truncated.
// When the range is narrower than six levels delta is zero, every edge equals
// bottom, and the whole image collapses to band 6.
func Threshold(img *image.Gray) *BandMap {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	bands := newBandMap(w, h)
	if w == 0 || h == 0 {
		return bands
	}

	top, bottom := luminanceRange(img)
	delta := (top - bottom) / Faces

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := int(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			bands.Bands[labelOffset(w, x, y)] = uint8(bandOf(p, bottom, delta))
		}
	}
	return bands
}

// bandOf returns the highest i+1 (i in 0..5) with p >= bottom + i*delta.
func bandOf(p, bottom, delta int) int {
	band := 1
	for i := 1; i < Faces; i++ {
		if p >= bottom+i*delta {
			band = i + 1
		}
	}
	return band
}

func luminanceRange(img *image.Gray) (top, bottom int) {
	b := img.Bounds()
	top, bottom = 0, 255
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := int(img.GrayAt(x, y).Y)
			top = max(top, p)
			bottom = min(bottom, p)
		}
	}
	return top, bottom
}

// Preview renders the six-tone image: band b is drawn as gray 255*(b-1)/6.
func (bm *BandMap) Preview() *image.Gray {
	out := image.NewGray(image.Rect(0, 0, bm.W, bm.H))
	for y := 0; y < bm.H; y++ {
		for x := 0; x < bm.W; x++ {
			band := clampInt(bm.At(x, y), 1, Faces)
			out.SetGray(x, y, color.Gray{Y: uint8(255 * (band - 1) / Faces)})
		}
	}
	return out
}
