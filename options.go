package dicemosaic

import (
	"fmt"
	"strings"
)

// ColorMode selects which asset set the die values are mapped onto.
type ColorMode int

const (
	// ColorNormal maps the brightest band to the face with the most light
	// area (dark dice with white pips: six pips is the lightest tile).
	ColorNormal ColorMode = iota
	// ColorInverted is used for white dice with dark pips: every value v is
	// placed as 7-v.
	ColorInverted
)

func (m ColorMode) String() string {
	switch m {
	case ColorInverted:
		return "inverted"
	default:
		return "normal"
	}
}

// ParseColorMode accepts "normal"/"black" and "inverted"/"white".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal", "black":
		return ColorNormal, nil
	case "inverted", "white":
		return ColorInverted, nil
	}
	return ColorNormal, fmt.Errorf("%w: unknown color mode %q (must be 'normal' or 'inverted')", ErrConfig, s)
}

type Options struct {
	// Source pixels per die edge. Every r×r block of the scaled image
	// becomes one die. Larger values => fewer dice.
	Ratio int
	// Edge of a rendered die tile in pixels. The mosaic is
	// (dice wide × TileSize) by (dice tall × TileSize).
	TileSize int
	// Physical die edge in millimeters. Only used for the size report.
	DiceSizeMM int
	// Which die color the build targets.
	Mode ColorMode
}

func DefaultOptions() Options {
	return Options{
		Ratio:      15,
		TileSize:   50,
		DiceSizeMM: 16,
		Mode:       ColorNormal,
	}
}

// Validate checks every field before any image work starts.
func (o Options) Validate() error {
	if o.Ratio <= 0 {
		return fmt.Errorf("%w: die-to-pixel ratio must be positive, got %d", ErrConfig, o.Ratio)
	}
	if o.TileSize <= 0 {
		return fmt.Errorf("%w: tile size must be positive, got %d", ErrConfig, o.TileSize)
	}
	if o.DiceSizeMM <= 0 {
		return fmt.Errorf("%w: dice size must be positive, got %d mm", ErrConfig, o.DiceSizeMM)
	}
	if o.Mode != ColorNormal && o.Mode != ColorInverted {
		return fmt.Errorf("%w: unknown color mode %d", ErrConfig, o.Mode)
	}
	return nil
}
