package dicemosaic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Aggregate collapses every non-overlapping ratio×ratio block of bands into
// one die value: the block sum divided by ratio², truncated (not rounded).
func Aggregate(bands *BandMap, ratio int) (*DieGrid, error) {
	if ratio <= 0 {
		return nil, fmt.Errorf("%w: die-to-pixel ratio must be positive, got %d", ErrConfig, ratio)
	}
	if bands.W == 0 || bands.H == 0 {
		return nil, fmt.Errorf("%w: empty band map", ErrInput)
	}
	if bands.W%ratio != 0 || bands.H%ratio != 0 {
		return nil, fmt.Errorf("%w: band map %dx%d is not a multiple of ratio %d", ErrInput, bands.W, bands.H, ratio)
	}

	data := make([]float64, len(bands.Bands))
	for i, v := range bands.Bands {
		if v < 1 || v > Faces {
			x, y := i%bands.W, i/bands.W
			return nil, fmt.Errorf("%w: band %d at (%d,%d) is outside 1..%d", ErrInput, v, x, y, Faces)
		}
		data[i] = float64(v)
	}
	m := mat.NewDense(bands.H, bands.W, data)

	grid := &DieGrid{
		W:     bands.W / ratio,
		H:     bands.H / ratio,
		Cells: make([]int, (bands.W/ratio)*(bands.H/ratio)),
	}
	area := ratio * ratio
	for row := 0; row < grid.H; row++ {
		for col := 0; col < grid.W; col++ {
			block := m.Slice(row*ratio, (row+1)*ratio, col*ratio, (col+1)*ratio)
			// Sums of small integers are exact in float64.
			sum := int(mat.Sum(block))
			grid.Cells[labelOffset(grid.W, col, row)] = clampInt(sum/area, 1, Faces)
		}
	}
	return grid, nil
}
