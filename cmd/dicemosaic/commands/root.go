package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dicemosaic",
		Short: "Turn a photograph into a mosaic of dice",
		Long: `dicemosaic converts a photograph into a grid of six-sided dice whose pip
counts follow the local brightness. It renders a preview of the mosaic and a
row-by-row build sheet for assembling it from real dice.

Typical use:
  dicemosaic init --dir assets      # render die tiles and write config.ini
  dicemosaic build photo.jpg        # mosaic + build sheet`,
		// Without a subcommand show help instead of succeeding silently
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
	}
}

// Execute runs the root command. Called once by main.main().
func Execute() error {
	// Errors are printed with colors by the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
