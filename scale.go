package dicemosaic

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Scale resizes img so both sides are whole multiples of ratio, dropping at
// most ratio-1 pixels per side. The result always starts at (0,0).
func Scale(img *image.Gray, ratio int) (*image.Gray, error) {
	if ratio <= 0 {
		return nil, fmt.Errorf("%w: die-to-pixel ratio must be positive, got %d", ErrConfig, ratio)
	}
	b := img.Bounds()
	w := (b.Dx() / ratio) * ratio
	h := (b.Dy() / ratio) * ratio
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: %dx%d px cannot hold a %d px die", ErrImageTooSmall, b.Dx(), b.Dy(), ratio)
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst, nil
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}
