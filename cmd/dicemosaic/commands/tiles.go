package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/setanarut/dicemosaic"
	"github.com/setanarut/dicemosaic/internal/config"
	"github.com/setanarut/dicemosaic/internal/printer"
	"github.com/setanarut/dicemosaic/utils"
)

type tilesOptions struct {
	dir       string
	size      int
	faceColor string
	pipColor  string
}

func init() {
	rootCmd.AddCommand(newTilesCmd())
	rootCmd.AddCommand(newInitCmd())
}

func newTilesCmd() *cobra.Command {
	opts := tilesOptions{}
	cmd := &cobra.Command{
		Use:   "tiles",
		Short: "Render the six die-face tiles",
		Long: `Render cube_1.png..cube_6.png into --dir.

The default colors draw dark dice with white pips, which matches
--color normal. For white dice use --face '#ffffff' --pip '#000000'
together with build --color inverted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := renderTiles(opts)
			if err != nil {
				return printer.Error("Tile rendering failed", err.Error(), nil)
			}
			printer.Success("Rendered %d tiles into %s\n", len(paths), opts.dir)
			return nil
		},
	}
	addTileFlags(cmd, &opts)
	return cmd
}

func addTileFlags(cmd *cobra.Command, opts *tilesOptions) {
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "assets", "Output directory for the tiles")
	cmd.Flags().IntVar(&opts.size, "size", 50, "Tile edge in pixels")
	cmd.Flags().StringVar(&opts.faceColor, "face", "#000000", "Die face color")
	cmd.Flags().StringVar(&opts.pipColor, "pip", "#ffffff", "Pip color")
}

func renderTiles(opts tilesOptions) ([dicemosaic.Faces]string, error) {
	var paths [dicemosaic.Faces]string
	face, err := utils.ParseColor(opts.faceColor)
	if err != nil {
		return paths, err
	}
	pip, err := utils.ParseColor(opts.pipColor)
	if err != nil {
		return paths, err
	}
	tiles, err := utils.RenderTiles(opts.size, face, pip)
	if err != nil {
		return paths, err
	}
	return utils.SaveTiles(tiles, opts.dir)
}

type initOptions struct {
	tiles tilesOptions
	ratio int
	force bool
}

func newInitCmd() *cobra.Command {
	opts := initOptions{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Render default tiles and write a matching config.ini",
		Long: `Initialize a working directory for dicemosaic.

Creates:
  • <dir>/cube_1.png..cube_6.png - die face tiles
  • config.ini                   - configuration pointing at those tiles

Use --force to overwrite an existing config.ini.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := runInit(opts, ".")
			if err != nil {
				return printer.Error("Initialization failed", err.Error(), []string{
					"Use --force to overwrite an existing config.ini",
				})
			}
			printer.Success("Wrote %s\n", path)
			printer.Info("\nNext: dicemosaic build <image>\n")
			return nil
		},
	}
	addTileFlags(cmd, &opts.tiles)
	cmd.Flags().IntVarP(&opts.ratio, "ratio", "r", 15, "Default source pixels per die edge (dice_size_px)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing config.ini")
	return cmd
}

// runInit renders tiles under root and writes root/config.ini with asset
// paths relative to it.
func runInit(opts initOptions, root string) (string, error) {
	cfgPath := filepath.Join(root, "config.ini")
	if !opts.force {
		if _, err := os.Stat(cfgPath); err == nil {
			return "", fmt.Errorf("%s already exists", cfgPath)
		}
	}
	if opts.ratio <= 0 {
		return "", fmt.Errorf("%w: ratio must be positive, got %d", dicemosaic.ErrConfig, opts.ratio)
	}

	tileOpts := opts.tiles
	tileOpts.dir = filepath.Join(root, opts.tiles.dir)
	if filepath.IsAbs(opts.tiles.dir) {
		tileOpts.dir = opts.tiles.dir
	}
	if _, err := renderTiles(tileOpts); err != nil {
		return "", err
	}

	cfg := &config.Config{
		Resolution: config.Resolution{DiceSizePx: opts.ratio, DiceImageSize: opts.tiles.size},
	}
	var rel [dicemosaic.Faces]string
	for i := range rel {
		rel[i] = filepath.Join(opts.tiles.dir, config.AssetKey(i+1)+".png")
	}
	cfg.Assets.SetPaths(rel)
	if err := config.Write(cfg, cfgPath); err != nil {
		return "", err
	}
	return cfgPath, nil
}
