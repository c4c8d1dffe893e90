package dicemosaic

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale_DimensionsAreMultiplesOfRatio(t *testing.T) {
	cases := []struct{ w, h, ratio int }{
		{30, 30, 10},
		{31, 47, 10},
		{100, 75, 15},
		{7, 9, 1},
		{64, 33, 16},
		{19, 19, 19},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%dx%d_r%d", tc.w, tc.h, tc.ratio), func(t *testing.T) {
			out, err := Scale(uniformGray(tc.w, tc.h, 100), tc.ratio)
			require.NoError(t, err)

			b := out.Bounds()
			assert.Equal(t, image.Point{}, b.Min)
			assert.Zero(t, b.Dx()%tc.ratio)
			assert.Zero(t, b.Dy()%tc.ratio)
			assert.Less(t, tc.w-b.Dx(), tc.ratio)
			assert.Less(t, tc.h-b.Dy(), tc.ratio)
			assert.GreaterOrEqual(t, tc.w, b.Dx())
			assert.GreaterOrEqual(t, tc.h, b.Dy())
		})
	}
}

func TestScale_ExactMultipleIsCopied(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 20, 10))
	for i := range src.Pix {
		src.Pix[i] = uint8(i)
	}

	out, err := Scale(src, 10)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, out.Pix)

	out.Pix[0] = 255
	assert.Equal(t, uint8(0), src.Pix[0], "input must not be shared")
}

func TestScale_OffsetBounds(t *testing.T) {
	src := uniformGray(40, 40, 77).SubImage(image.Rect(5, 5, 35, 35)).(*image.Gray)

	out, err := Scale(src, 10)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 30), out.Bounds())
	assert.Equal(t, uint8(77), out.GrayAt(0, 0).Y)
}

func TestScale_Errors(t *testing.T) {
	t.Run("zero ratio is a configuration error", func(t *testing.T) {
		_, err := Scale(uniformGray(30, 30, 1), 0)
		require.ErrorIs(t, err, ErrConfig)
	})

	t.Run("negative ratio is a configuration error", func(t *testing.T) {
		_, err := Scale(uniformGray(30, 30, 1), -3)
		require.ErrorIs(t, err, ErrConfig)
	})

	t.Run("image smaller than one die", func(t *testing.T) {
		_, err := Scale(uniformGray(9, 30, 1), 10)
		require.ErrorIs(t, err, ErrImageTooSmall)
		require.ErrorIs(t, err, ErrInput)
	})
}
