package utils

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/go-forks/gopnm"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/setanarut/dicemosaic"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ReadImage decodes any registered format (png, jpeg, gif, bmp, tiff, webp, pnm).
func ReadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", dicemosaic.ErrInput, path, err)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", dicemosaic.ErrInput, path, err)
	}
	return img, nil
}

// ReadGray decodes path and converts it to luminance.
func ReadGray(path string) (*image.Gray, error) {
	img, err := ReadImage(path)
	if err != nil {
		return nil, err
	}
	return dicemosaic.ToGray(img), nil
}

func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// ============ TILES ============

// LoadTiles opens the six face assets (index 0 is face 1). A tile that is not
// size×size is resampled to it. Any missing or undecodable asset aborts the
// load before the others are used.
func LoadTiles(paths [dicemosaic.Faces]string, size int) (dicemosaic.TileSet, error) {
	var tiles dicemosaic.TileSet
	if size <= 0 {
		return tiles, fmt.Errorf("%w: tile size must be positive, got %d", dicemosaic.ErrConfig, size)
	}
	for i, path := range paths {
		key := "cube_" + strconv.Itoa(i+1)
		if path == "" {
			return tiles, &dicemosaic.StageError{
				Stage:    dicemosaic.StageMosaic,
				Resource: key,
				Err:      fmt.Errorf("%w: no asset path configured", dicemosaic.ErrAsset),
			}
		}
		img, err := ReadImage(path)
		if err != nil {
			return tiles, &dicemosaic.StageError{
				Stage:    dicemosaic.StageMosaic,
				Resource: key + "=" + path,
				Err:      fmt.Errorf("%w: %v", dicemosaic.ErrAsset, err),
			}
		}
		gray := dicemosaic.ToGray(img)
		if b := gray.Bounds(); b.Dx() != size || b.Dy() != size {
			log.Printf("tile warning: %s is %dx%d, resampling to %dx%d", path, b.Dx(), b.Dy(), size, size)
			resized := image.NewGray(image.Rect(0, 0, size, size))
			draw.CatmullRom.Scale(resized, resized.Bounds(), gray, b, draw.Src, nil)
			gray = resized
		}
		tiles[i] = gray
	}
	return tiles, nil
}

// pipLayout lists pip centers per face in units of a 4×4 lattice
// (1..3 on each axis, 2 is the middle).
var pipLayout = [dicemosaic.Faces][]image.Point{
	{{2, 2}},
	{{1, 1}, {3, 3}},
	{{1, 1}, {2, 2}, {3, 3}},
	{{1, 1}, {3, 1}, {1, 3}, {3, 3}},
	{{1, 1}, {3, 1}, {2, 2}, {1, 3}, {3, 3}},
	{{1, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {3, 3}},
}

// RenderTile draws face value (1..6) as a size×size gray tile. Pip edges are
// anti-aliased by blending faceColor into pipColor by 4×4 supersampled coverage.
func RenderTile(value, size int, faceColor, pipColor colorful.Color) (*image.Gray, error) {
	if value < 1 || value > dicemosaic.Faces {
		return nil, fmt.Errorf("face value %d outside 1..%d", value, dicemosaic.Faces)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: tile size must be positive, got %d", dicemosaic.ErrConfig, size)
	}
	tile := image.NewGray(image.Rect(0, 0, size, size))
	unit := float64(size) / 4
	radius := float64(size) * 0.1
	pips := pipLayout[value-1]

	const samples = 4
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			hits := 0
			for sy := 0; sy < samples; sy++ {
				for sx := 0; sx < samples; sx++ {
					px := float64(x) + (float64(sx)+0.5)/samples
					py := float64(y) + (float64(sy)+0.5)/samples
					for _, p := range pips {
						dx := px - float64(p.X)*unit
						dy := py - float64(p.Y)*unit
						if dx*dx+dy*dy <= radius*radius {
							hits++
							break
						}
					}
				}
			}
			c := faceColor
			switch {
			case hits == samples*samples:
				c = pipColor
			case hits > 0:
				c = faceColor.BlendLab(pipColor, float64(hits)/(samples*samples)).Clamped()
			}
			tile.SetGray(x, y, color.GrayModel.Convert(c).(color.Gray))
		}
	}
	return tile, nil
}

// RenderTiles draws all six faces.
func RenderTiles(size int, faceColor, pipColor colorful.Color) (dicemosaic.TileSet, error) {
	var tiles dicemosaic.TileSet
	for i := 0; i < dicemosaic.Faces; i++ {
		t, err := RenderTile(i+1, size, faceColor, pipColor)
		if err != nil {
			return tiles, err
		}
		tiles[i] = t
	}
	return tiles, nil
}

// SaveTiles writes cube_1.png..cube_6.png into dir and returns their paths.
func SaveTiles(tiles dicemosaic.TileSet, dir string) ([dicemosaic.Faces]string, error) {
	var paths [dicemosaic.Faces]string
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return paths, err
	}
	for i, t := range tiles {
		if t == nil {
			return paths, fmt.Errorf("%w: no tile for face %d", dicemosaic.ErrAsset, i+1)
		}
		path := filepath.Join(dir, "cube_"+strconv.Itoa(i+1)+".png")
		if err := SaveImage(t, path); err != nil {
			return paths, err
		}
		paths[i] = path
	}
	return paths, nil
}

// ParseColor accepts "#rrggbb" or "#rgb".
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: invalid color %q: %v", dicemosaic.ErrConfig, hex, err)
	}
	return c, nil
}
