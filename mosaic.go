package dicemosaic

import (
	"fmt"
	"image"
	"strconv"

	"golang.org/x/image/draw"
)

// TileSet holds one rendered die face per value; index 0 is face 1.
type TileSet [Faces]image.Image

// Tile returns the tile for face value v (1..6).
func (ts TileSet) Tile(v int) image.Image {
	return ts[v-1]
}

// Validate checks that all six tiles exist and are tileSize square.
func (ts TileSet) Validate(tileSize int) error {
	if tileSize <= 0 {
		return fmt.Errorf("%w: tile size must be positive, got %d", ErrConfig, tileSize)
	}
	for i, t := range ts {
		face := strconv.Itoa(i + 1)
		if t == nil {
			return stageErr(StageMosaic, "cube_"+face, fmt.Errorf("%w: no tile for face %s", ErrAsset, face))
		}
		size := t.Bounds().Size()
		if size.X != tileSize || size.Y != tileSize {
			return stageErr(StageMosaic, "cube_"+face,
				fmt.Errorf("%w: tile for face %s is %dx%d, expected %dx%d", ErrAsset, face, size.X, size.Y, tileSize, tileSize))
		}
	}
	return nil
}

// Mosaic pastes one tile per die. Cell (row, col) is drawn at pixel
// (col*tileSize, row*tileSize). In ColorInverted mode the grid is remapped to
// 7-v once before any lookup. All tiles are checked before the first paste.
func Mosaic(grid *DieGrid, tiles TileSet, tileSize int, mode ColorMode) (*image.Gray, error) {
	if err := tiles.Validate(tileSize); err != nil {
		return nil, err
	}
	placed := grid.ForMode(mode)

	out := image.NewGray(image.Rect(0, 0, placed.W*tileSize, placed.H*tileSize))
	for row := 0; row < placed.H; row++ {
		for col := 0; col < placed.W; col++ {
			v := placed.At(row, col)
			if v < 1 || v > Faces {
				return nil, stageErr(StageMosaic, "",
					fmt.Errorf("%w: die at row %d column %d has value %d", ErrInput, row, col, v))
			}
			tile := tiles.Tile(v)
			at := image.Pt(col*tileSize, row*tileSize)
			draw.Draw(out, image.Rectangle{Min: at, Max: at.Add(image.Pt(tileSize, tileSize))}, tile, tile.Bounds().Min, draw.Src)
		}
	}
	return out, nil
}

// Summary describes the physical mosaic.
type Summary struct {
	DiceWide, DiceTall int
	Total              int
	WidthMM, HeightMM  int
	// Dice showing each face; index 0 is face 1.
	Counts [Faces]int
}

// Dimensions reports the physical size of grid built from dice with an edge
// of diceSizeMM millimeters.
func Dimensions(grid *DieGrid, diceSizeMM int) Summary {
	return Summary{
		DiceWide: grid.W,
		DiceTall: grid.H,
		Total:    grid.W * grid.H,
		WidthMM:  grid.W * diceSizeMM,
		HeightMM: grid.H * diceSizeMM,
		Counts:   grid.Counts(),
	}
}
