package printer

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/setanarut/dicemosaic"
)

func TestError(t *testing.T) {
	t.Run("returns error with title", func(t *testing.T) {
		err := Error("Test Error", "This is a test error", []string{})
		require.Error(t, err)
		require.Equal(t, "Test Error", err.Error())
	})

	t.Run("returns error with title for multiple suggestions", func(t *testing.T) {
		err := Error("Test Error", "Explanation", []string{
			"First option",
			"Second option",
		})
		require.Error(t, err)
		require.Equal(t, "Test Error", err.Error())
	})
}

func TestErrorWithContext(t *testing.T) {
	context := map[string]string{
		"Stage":    "mosaic",
		"Resource": "cube_3",
	}
	err := ErrorWithContext("Die tile asset error", "Explanation", context, []string{"Fix it"})
	require.Error(t, err)
	require.Equal(t, "Die tile asset error", err.Error())
}

func TestFormatSummary(t *testing.T) {
	s := dicemosaic.Summary{
		DiceWide: 120,
		DiceTall: 90,
		Total:    10800,
		WidthMM:  1920,
		HeightMM: 1440,
		Counts:   [dicemosaic.Faces]int{1800, 1800, 1800, 1800, 1800, 1800},
	}

	out := FormatSummary(s, 16)
	require.Contains(t, out, "120 dice wide, 90 dice tall, 10,800 dice total\n")
	require.Contains(t, out, "1,920 mm wide, 1,440 mm tall (16 mm dice)\n")
	require.Contains(t, out, "  face 6: 1,800\n")
}

func TestSummary(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	Summary(&buf, dicemosaic.Summary{DiceWide: 3, DiceTall: 3, Total: 9, WidthMM: 48, HeightMM: 48}, 16)
	require.Contains(t, buf.String(), "Mosaic size\n")
	require.Contains(t, buf.String(), "3 dice wide, 3 dice tall, 9 dice total")
}
