package commands

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setanarut/dicemosaic"
	"github.com/setanarut/dicemosaic/utils"
)

// setupProject writes tiles, config.ini and a 30×30 mid-gray photo into a
// temp dir.
func setupProject(t *testing.T) (dir, cfgPath, imgPath string) {
	t.Helper()
	dir = t.TempDir()
	cfgPath, err := runInit(initOptions{
		tiles: tilesOptions{dir: "assets", size: 50, faceColor: "#000", pipColor: "#fff"},
		ratio: 10,
	}, dir)
	require.NoError(t, err)

	img := image.NewGray(image.Rect(0, 0, 30, 30))
	for i := range img.Pix {
		img.Pix[i] = 128
	}
	imgPath = filepath.Join(dir, "gray.png")
	require.NoError(t, utils.SaveImage(img, imgPath))
	return dir, cfgPath, imgPath
}

func TestRunBuild_UniformGray(t *testing.T) {
	dir, cfgPath, imgPath := setupProject(t)
	out := filepath.Join(dir, "out")

	var buf bytes.Buffer
	res, err := runBuild(buildOptions{
		imagePath:  imgPath,
		configPath: cfgPath,
		colorMode:  "normal",
		diceSizeMM: 16,
		outDir:     out,
		preview:    true,
	}, &buf)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(out, "gray_16_10.txt"), res.SheetPath)
	sheet, err := os.ReadFile(res.SheetPath)
	require.NoError(t, err)
	assert.Equal(t, "Line 1: 6 6 6\nLine 2: 6 6 6\nLine 3: 6 6 6\n", string(sheet))

	mosaic := decodePNG(t, res.MosaicPath)
	assert.Equal(t, image.Rect(0, 0, 150, 150), mosaic.Bounds())
	assert.FileExists(t, res.PreviewPath)

	assert.Equal(t, 9, res.Summary.Total)
	assert.Contains(t, buf.String(), "48 mm wide, 48 mm tall")
}

func TestRunBuild_RatioFlagOverridesConfig(t *testing.T) {
	dir, cfgPath, imgPath := setupProject(t)

	res, err := runBuild(buildOptions{
		imagePath:  imgPath,
		configPath: cfgPath,
		diceSizeMM: 20,
		ratio:      15,
		ratioSet:   true,
		outDir:     dir,
	}, io.Discard)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.SheetPath, "gray_20_15.txt"))
	assert.Equal(t, 2, res.Summary.DiceWide)
	assert.Empty(t, res.PreviewPath)
}

func TestRunBuild_Errors(t *testing.T) {
	dir, cfgPath, imgPath := setupProject(t)

	t.Run("zero ratio is a configuration error", func(t *testing.T) {
		_, err := runBuild(buildOptions{
			imagePath:  filepath.Join(dir, "does-not-exist.png"),
			configPath: cfgPath,
			diceSizeMM: 16,
			ratioSet:   true,
			outDir:     dir,
		}, io.Discard)
		require.ErrorIs(t, err, dicemosaic.ErrConfig)
	})

	t.Run("unknown color mode", func(t *testing.T) {
		_, err := runBuild(buildOptions{imagePath: imgPath, configPath: cfgPath, colorMode: "red", diceSizeMM: 16, outDir: dir}, io.Discard)
		require.ErrorIs(t, err, dicemosaic.ErrConfig)
	})

	t.Run("missing config", func(t *testing.T) {
		_, err := runBuild(buildOptions{imagePath: imgPath, configPath: filepath.Join(dir, "nope.ini"), diceSizeMM: 16, outDir: dir}, io.Discard)
		require.ErrorIs(t, err, dicemosaic.ErrConfig)
	})

	t.Run("unreadable image", func(t *testing.T) {
		_, err := runBuild(buildOptions{imagePath: filepath.Join(dir, "nope.png"), configPath: cfgPath, diceSizeMM: 16, outDir: dir}, io.Discard)
		require.ErrorIs(t, err, dicemosaic.ErrInput)
		var se *dicemosaic.StageError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, dicemosaic.StageDecode, se.Stage)
	})

	t.Run("image too small", func(t *testing.T) {
		_, err := runBuild(buildOptions{imagePath: imgPath, configPath: cfgPath, diceSizeMM: 16, ratio: 31, ratioSet: true, outDir: dir}, io.Discard)
		require.ErrorIs(t, err, dicemosaic.ErrImageTooSmall)
	})

	t.Run("missing tile asset", func(t *testing.T) {
		require.NoError(t, os.Remove(filepath.Join(dir, "assets", "cube_2.png")))
		_, err := runBuild(buildOptions{imagePath: imgPath, configPath: cfgPath, diceSizeMM: 16, outDir: filepath.Join(dir, "out2")}, io.Discard)
		require.ErrorIs(t, err, dicemosaic.ErrAsset)
		assert.NoFileExists(t, filepath.Join(dir, "out2", "gray_16_10.txt"))
	})
}

func TestRunInit_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	opts := initOptions{tiles: tilesOptions{dir: "assets", size: 10, faceColor: "#000", pipColor: "#fff"}, ratio: 5}

	_, err := runInit(opts, dir)
	require.NoError(t, err)

	_, err = runInit(opts, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	opts.force = true
	_, err = runInit(opts, dir)
	require.NoError(t, err)
}

func TestRenderTiles_InvalidColor(t *testing.T) {
	_, err := renderTiles(tilesOptions{dir: t.TempDir(), size: 10, faceColor: "black", pipColor: "#fff"})
	require.ErrorIs(t, err, dicemosaic.ErrConfig)
}

func TestBuildCmd_RequiresImageArgument(t *testing.T) {
	cmd := newBuildCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestRootCommand_ShowsHelpWhenNoSubcommand(t *testing.T) {
	root := newRootCmd()
	root.AddCommand(newBuildCmd(), newTilesCmd(), newInitCmd())
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "Usage:")
	assert.Contains(t, buf.String(), "build")
	assert.Contains(t, buf.String(), "tiles")
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}
