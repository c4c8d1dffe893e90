package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/setanarut/dicemosaic"
	"github.com/setanarut/dicemosaic/internal/config"
	"github.com/setanarut/dicemosaic/internal/printer"
	"github.com/setanarut/dicemosaic/utils"
)

type buildOptions struct {
	imagePath  string
	configPath string
	colorMode  string
	diceSizeMM int
	ratio      int
	outDir     string
	preview    bool
	ratioSet   bool
}

// buildResult lists the files a build wrote.
type buildResult struct {
	SheetPath   string
	MosaicPath  string
	PreviewPath string
	Summary     dicemosaic.Summary
}

func init() {
	rootCmd.AddCommand(newBuildCmd())
}

func newBuildCmd() *cobra.Command {
	opts := buildOptions{}
	cmd := &cobra.Command{
		Use:   "build <image>",
		Short: "Build a dice mosaic and its build sheet from a photograph",
		Long: `Build converts a photograph into a dice mosaic.

Writes, into --out:
  • <name>_<mm>_<ratio>.txt  - build sheet, one line per row of dice
  • <name>_<mm>_<ratio>.png  - rendered mosaic
  • <name>_<mm>_<ratio>_bands.png - six-tone preview (with --preview)

--ratio defaults to dice_size_px from the configuration file.

Environment:
  DICEMOSAIC_CONFIG      default for --config
  DICEMOSAIC_OUTPUT_DIR  default for --out
  DICEMOSAIC_NO_PREVIEW  suppresses --preview`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.imagePath = args[0]
			opts.ratioSet = cmd.Flags().Changed("ratio")

			e, err := config.LoadEnv()
			if err != nil {
				return printer.Error("Invalid environment", err.Error(), nil)
			}
			if !cmd.Flags().Changed("config") {
				opts.configPath = e.ConfigPath
			}
			if !cmd.Flags().Changed("out") {
				opts.outDir = e.OutputDir
			}
			if e.NoPreview {
				opts.preview = false
			}

			res, err := runBuild(opts, cmd.OutOrStdout())
			if err != nil {
				return reportBuildError(err, opts)
			}
			printer.Success("Build sheet: %s\n", res.SheetPath)
			printer.Success("Mosaic: %s\n", res.MosaicPath)
			if res.PreviewPath != "" {
				printer.Success("Preview: %s\n", res.PreviewPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "config.ini", "Configuration file (INI or YAML)")
	cmd.Flags().StringVar(&opts.colorMode, "color", "normal", "Dice color: 'normal' (dark dice) or 'inverted' (white dice)")
	cmd.Flags().IntVar(&opts.diceSizeMM, "dice-size", 16, "Physical die edge in millimeters")
	cmd.Flags().IntVarP(&opts.ratio, "ratio", "r", 15, "Source pixels per die edge (default: dice_size_px from config)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "Output directory")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Also write the six-tone threshold preview")
	return cmd
}

// runBuild performs one full run. Configuration problems abort before the
// image is opened; asset problems abort before the mosaic is drawn.
func runBuild(opts buildOptions, out io.Writer) (*buildResult, error) {
	mode, err := dicemosaic.ParseColorMode(opts.colorMode)
	if err != nil {
		return nil, &dicemosaic.StageError{Stage: dicemosaic.StageConfig, Resource: "--color", Err: err}
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, &dicemosaic.StageError{
			Stage:    dicemosaic.StageConfig,
			Resource: opts.configPath,
			Err:      fmt.Errorf("%w: %v", dicemosaic.ErrConfig, err),
		}
	}

	opt := dicemosaic.Options{
		Ratio:      cfg.Resolution.DiceSizePx,
		TileSize:   cfg.Resolution.DiceImageSize,
		DiceSizeMM: opts.diceSizeMM,
		Mode:       mode,
	}
	if opts.ratioSet {
		opt.Ratio = opts.ratio
	}
	if err := opt.Validate(); err != nil {
		return nil, &dicemosaic.StageError{Stage: dicemosaic.StageConfig, Err: err}
	}

	img, err := utils.ReadImage(opts.imagePath)
	if err != nil {
		return nil, &dicemosaic.StageError{Stage: dicemosaic.StageDecode, Resource: opts.imagePath, Err: err}
	}

	printer.Step("Thresholding %s (ratio %d, %s dice)\n", filepath.Base(opts.imagePath), opt.Ratio, mode)
	mb := dicemosaic.NewMosaicBuilder(img, opt)
	mb.Logf = nil
	if err := mb.Build(); err != nil {
		return nil, err
	}

	tiles, err := utils.LoadTiles(cfg.Assets.Paths(), opt.TileSize)
	if err != nil {
		return nil, err
	}
	mosaic, err := mb.Render(tiles)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return nil, &dicemosaic.StageError{Stage: dicemosaic.StageSheet, Resource: opts.outDir, Err: err}
	}
	stem := filepath.Join(opts.outDir, dicemosaic.ArtifactStem(opts.imagePath, opt.DiceSizeMM, opt.Ratio))
	res := &buildResult{
		SheetPath:  stem + ".txt",
		MosaicPath: stem + ".png",
		Summary:    mb.Summary(),
	}

	if err := writeSheet(res.SheetPath, mb.Sheet()); err != nil {
		return nil, &dicemosaic.StageError{Stage: dicemosaic.StageSheet, Resource: res.SheetPath, Err: err}
	}
	if err := utils.SaveImage(mosaic, res.MosaicPath); err != nil {
		return nil, &dicemosaic.StageError{Stage: dicemosaic.StageMosaic, Resource: res.MosaicPath, Err: err}
	}
	if opts.preview {
		res.PreviewPath = stem + "_bands.png"
		if err := utils.SaveImage(mb.Bands.Preview(), res.PreviewPath); err != nil {
			return nil, &dicemosaic.StageError{Stage: dicemosaic.StageThreshold, Resource: res.PreviewPath, Err: err}
		}
	}

	printer.Summary(out, res.Summary, opt.DiceSizeMM)
	return res, nil
}

func writeSheet(path string, sheet dicemosaic.BuildSheet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := sheet.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}

// reportBuildError prints err with the stage and resource that caused it.
func reportBuildError(err error, opts buildOptions) error {
	ctx := map[string]string{"Image": opts.imagePath, "Config": opts.configPath}
	var se *dicemosaic.StageError
	if errors.As(err, &se) {
		ctx["Stage"] = se.Stage
		if se.Resource != "" {
			ctx["Resource"] = se.Resource
		}
	}

	switch {
	case errors.Is(err, dicemosaic.ErrConfig):
		return printer.ErrorWithContext("Configuration error", err.Error(), ctx, []string{
			"Check that [Resolution] and [Assets] hold all required keys",
			"Run 'dicemosaic init' to generate a working configuration",
		})
	case errors.Is(err, dicemosaic.ErrImageTooSmall):
		return printer.ErrorWithContext("Image too small", err.Error(), ctx, []string{
			"Use a larger image or a smaller --ratio",
		})
	case errors.Is(err, dicemosaic.ErrInput):
		return printer.ErrorWithContext("Cannot read input image", err.Error(), ctx, nil)
	case errors.Is(err, dicemosaic.ErrAsset):
		return printer.ErrorWithContext("Die tile asset error", err.Error(), ctx, []string{
			"Check the cube_1..cube_6 paths in [Assets]",
			"Run 'dicemosaic tiles' to render a default tile set",
		})
	default:
		return printer.ErrorWithContext("Build failed", err.Error(), ctx, nil)
	}
}
