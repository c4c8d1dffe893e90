package dicemosaic

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreshold_UniformImageCollapsesToBandSix(t *testing.T) {
	bands := Threshold(uniformGray(30, 30, 128))

	require.Equal(t, 30, bands.W)
	require.Equal(t, 30, bands.H)
	for i, b := range bands.Bands {
		assert.Equal(t, uint8(6), b, "pixel %d", i)
	}
}

func TestThreshold_NarrowRangeCollapsesToBandSix(t *testing.T) {
	// top-bottom = 5 < 6 => delta = 0
	img := image.NewGray(image.Rect(0, 0, 6, 1))
	copy(img.Pix, []uint8{100, 101, 102, 103, 104, 105})

	bands := Threshold(img)
	assert.Equal(t, []uint8{6, 6, 6, 6, 6, 6}, bands.Bands)
}

func TestThreshold_BandEdges(t *testing.T) {
	// bottom 10, top 70 => delta 10, edges 10 20 30 40 50 60
	img := image.NewGray(image.Rect(0, 0, 10, 1))
	copy(img.Pix, []uint8{10, 19, 20, 29, 30, 45, 50, 59, 60, 70})

	bands := Threshold(img)
	assert.Equal(t, []uint8{1, 1, 2, 2, 3, 4, 5, 5, 6, 6}, bands.Bands)
}

func TestThreshold_TruncatedDelta(t *testing.T) {
	// bottom 0, top 17 => delta 2, so 10 and above is band 6
	img := image.NewGray(image.Rect(0, 0, 5, 1))
	copy(img.Pix, []uint8{0, 2, 9, 10, 17})

	bands := Threshold(img)
	assert.Equal(t, []uint8{1, 2, 5, 6, 6}, bands.Bands)
}

func TestThreshold_RangeAndMonotonicity(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 64, 16))
	for i := range img.Pix {
		img.Pix[i] = uint8((i * 37) % 251)
	}

	bands := Threshold(img)
	byLum := map[uint8]uint8{}
	for i, b := range bands.Bands {
		require.GreaterOrEqual(t, b, uint8(1))
		require.LessOrEqual(t, b, uint8(6))
		byLum[img.Pix[i]] = b
	}
	for p, bp := range byLum {
		for q, bq := range byLum {
			if p >= q {
				assert.GreaterOrEqual(t, bp, bq, "luminance %d vs %d", p, q)
			}
		}
	}
}

func TestBandMap_Preview(t *testing.T) {
	bm := bandMapOf([][]uint8{{1, 2, 3}, {4, 5, 6}})

	prev := bm.Preview()
	require.Equal(t, image.Rect(0, 0, 3, 2), prev.Bounds())
	assert.Equal(t, []uint8{0, 42, 85, 127, 170, 212}, prev.Pix)
}
