package dicemosaic

import (
	"fmt"
	"image"
	"image/color"
	"log"
)

type MosaicBuilder struct {
	InputImage image.Image
	Options    Options
	Gray       *image.Gray
	Scaled     *image.Gray
	Bands      *BandMap
	Grid       *DieGrid // as computed, before the color mode is applied
	Placed     *DieGrid // faces that are physically placed
	// Logf receives the size report. Defaults to log.Printf.
	Logf func(format string, args ...any)
}

func NewMosaicBuilder(input image.Image, opt Options) *MosaicBuilder {
	return &MosaicBuilder{
		InputImage: input,
		Options:    opt,
		Logf:       log.Printf,
	}
}

// Build runs every stage up to the die grid. Options are checked before the
// input image is touched.
func (mb *MosaicBuilder) Build() error {
	if err := mb.Options.Validate(); err != nil {
		return stageErr(StageConfig, "", err)
	}
	if mb.InputImage == nil {
		return stageErr(StageDecode, "", fmt.Errorf("%w: no input image", ErrInput))
	}
	mb.Gray = ToGray(mb.InputImage)

	scaled, err := Scale(mb.Gray, mb.Options.Ratio)
	if err != nil {
		return stageErr(StageScale, "", err)
	}
	mb.Scaled = scaled
	mb.Bands = Threshold(mb.Scaled)

	grid, err := Aggregate(mb.Bands, mb.Options.Ratio)
	if err != nil {
		return stageErr(StageAggregate, "", err)
	}
	mb.Grid = grid
	mb.Placed = grid.ForMode(mb.Options.Mode)
	return nil
}

// Render assembles the mosaic from tiles and logs the physical size.
func (mb *MosaicBuilder) Render(tiles TileSet) (*image.Gray, error) {
	if mb.Grid == nil {
		return nil, stageErr(StageMosaic, "", fmt.Errorf("%w: Build has not run", ErrInput))
	}
	if err := tiles.Validate(mb.Options.TileSize); err != nil {
		return nil, err
	}
	mb.logSummary()
	// Placed already carries the color mode.
	return Mosaic(mb.Placed, tiles, mb.Options.TileSize, ColorNormal)
}

// Sheet compiles the build sheet of the placed faces.
func (mb *MosaicBuilder) Sheet() BuildSheet {
	if mb.Placed == nil {
		return nil
	}
	return CompileSheet(mb.Placed)
}

func (mb *MosaicBuilder) Summary() Summary {
	if mb.Placed == nil {
		return Summary{}
	}
	return Dimensions(mb.Placed, mb.Options.DiceSizeMM)
}

func (mb *MosaicBuilder) logSummary() {
	if mb.Logf == nil {
		return
	}
	s := mb.Summary()
	mb.Logf("%d dice wide, %d dice tall, %d dice total", s.DiceWide, s.DiceTall, s.Total)
	mb.Logf("%d mm wide, %d mm tall", s.WidthMM, s.HeightMM)
}

// ============ GRAY ============

// ToGray converts img to 8-bit luminance (ITU-R 601 weights). The result
// starts at (0,0). A *image.Gray input is copied.
func ToGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < h; y++ {
			copy(out.Pix[y*out.Stride:y*out.Stride+w], g.Pix[g.PixOffset(bounds.Min.X, bounds.Min.Y+y):])
		}
		return out
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetGray(x, y, color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray))
		}
	}
	return out
}
