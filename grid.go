package dicemosaic

import "fmt"

// Faces is the number of faces on a die.
const Faces = 6

// BandMap holds the brightness band (1..6) of every pixel of the scaled image.
type BandMap struct {
	W, H  int
	Bands []uint8 // len = W*H, row major
}

func newBandMap(w, h int) *BandMap {
	return &BandMap{W: w, H: h, Bands: make([]uint8, w*h)}
}

func (b *BandMap) At(x, y int) int {
	return int(b.Bands[labelOffset(b.W, x, y)])
}

// DieGrid is the face value (1..6) of every die, indexed by row and column.
// Row r, column c lands at pixel (c*tile, r*tile) in the mosaic.
type DieGrid struct {
	W, H  int
	Cells []int // len = W*H, row major
}

// NewDieGrid builds a grid from rows of face values. All rows must have the
// same length and every value must be a valid face.
func NewDieGrid(rows [][]int) (*DieGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty die grid", ErrInput)
	}
	w := len(rows[0])
	g := &DieGrid{W: w, H: len(rows), Cells: make([]int, 0, w*len(rows))}
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d dice, expected %d", ErrInput, r, len(row), w)
		}
		for c, v := range row {
			if v < 1 || v > Faces {
				return nil, fmt.Errorf("%w: die at row %d column %d has value %d", ErrInput, r, c, v)
			}
		}
		g.Cells = append(g.Cells, row...)
	}
	return g, nil
}

func (g *DieGrid) At(row, col int) int {
	return g.Cells[labelOffset(g.W, col, row)]
}

// Inverted returns a new grid with every value v replaced by 7-v.
func (g *DieGrid) Inverted() *DieGrid {
	out := &DieGrid{W: g.W, H: g.H, Cells: make([]int, len(g.Cells))}
	for i, v := range g.Cells {
		out.Cells[i] = Faces + 1 - v
	}
	return out
}

// ForMode returns the grid of faces that are physically placed in mode.
func (g *DieGrid) ForMode(mode ColorMode) *DieGrid {
	if mode == ColorInverted {
		return g.Inverted()
	}
	return g
}

// Counts returns how many dice show each face; index 0 is face 1.
func (g *DieGrid) Counts() [Faces]int {
	var counts [Faces]int
	for _, v := range g.Cells {
		counts[clampInt(v, 1, Faces)-1]++
	}
	return counts
}

func labelOffset(w, x, y int) int {
	return y*w + x
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
