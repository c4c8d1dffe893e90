package dicemosaic

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// SheetChunks is the number of groups each row is split into.
const SheetChunks = 8

// SeparatorToken marks a chunk boundary inside a row.
const SeparatorToken = "[X]"

// BuildSheet is the assembly instruction text, one line per grid row.
type BuildSheet []string

// CompileSheet renders each row as "Line N: v v v [X] v ...". A separator
// follows every ceil(W/8)-th value except the last one of the row. Rows
// narrower than eight dice are not split.
func CompileSheet(grid *DieGrid) BuildSheet {
	chunk := 0
	if grid.W >= SheetChunks {
		chunk = (grid.W + SheetChunks - 1) / SheetChunks
	}

	sheet := make(BuildSheet, 0, grid.H)
	var sb strings.Builder
	for row := 0; row < grid.H; row++ {
		sb.Reset()
		sb.WriteString("Line ")
		sb.WriteString(strconv.Itoa(row + 1))
		sb.WriteString(":")
		for col := 0; col < grid.W; col++ {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(grid.At(row, col)))
			if chunk > 0 && (col+1)%chunk == 0 && col+1 < grid.W {
				sb.WriteByte(' ')
				sb.WriteString(SeparatorToken)
			}
		}
		sheet = append(sheet, sb.String())
	}
	return sheet
}

// WriteTo writes every line followed by a newline.
func (s BuildSheet) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, line := range s {
		k, err := io.WriteString(w, line+"\n")
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func (s BuildSheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb)
	return sb.String()
}

// ArtifactStem returns "<source basename without extension>_<mm>_<ratio>".
// Both slash and backslash separated source paths are accepted.
func ArtifactStem(source string, diceSizeMM, ratio int) string {
	base := filepath.Base(strings.ReplaceAll(source, `\`, "/"))
	if i := strings.Index(base, "."); i > 0 {
		base = base[:i]
	}
	return base + "_" + strconv.Itoa(diceSizeMM) + "_" + strconv.Itoa(ratio)
}

// SheetName returns the build sheet file name for a source image.
func SheetName(source string, diceSizeMM, ratio int) string {
	return ArtifactStem(source, diceSizeMM, ratio) + ".txt"
}
