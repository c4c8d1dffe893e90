package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/setanarut/dicemosaic"
)

// Section and key names of the configuration file.
const (
	SectionResolution = "Resolution"
	SectionAssets     = "Assets"
	KeyDiceSizePx     = "dice_size_px"
	KeyDiceImageSize  = "dice_image_size"
)

// ErrMissingKey is returned for a required key that is absent or empty.
var ErrMissingKey = errors.New("missing configuration key")

// Resolution holds the pixel sizes.
type Resolution struct {
	DiceSizePx    int `yaml:"dice_size_px"`    // Source pixels per die edge (default ratio)
	DiceImageSize int `yaml:"dice_image_size"` // Rendered tile edge in pixels
}

// Assets holds one tile path per face.
type Assets struct {
	Cube1 string `yaml:"cube_1"`
	Cube2 string `yaml:"cube_2"`
	Cube3 string `yaml:"cube_3"`
	Cube4 string `yaml:"cube_4"`
	Cube5 string `yaml:"cube_5"`
	Cube6 string `yaml:"cube_6"`
}

// Config is the resolved configuration file.
type Config struct {
	Resolution Resolution `yaml:"resolution"`
	Assets     Assets     `yaml:"assets"`
}

// AssetKey returns "cube_<face>".
func AssetKey(face int) string {
	return "cube_" + strconv.Itoa(face)
}

// Paths returns the asset paths indexed by face-1.
func (a Assets) Paths() [dicemosaic.Faces]string {
	return [dicemosaic.Faces]string{a.Cube1, a.Cube2, a.Cube3, a.Cube4, a.Cube5, a.Cube6}
}

// SetPaths replaces all six asset paths.
func (a *Assets) SetPaths(p [dicemosaic.Faces]string) {
	a.Cube1, a.Cube2, a.Cube3, a.Cube4, a.Cube5, a.Cube6 = p[0], p[1], p[2], p[3], p[4], p[5]
}

// Load reads an INI (.ini, .cfg, anything else) or YAML (.yml, .yaml) file,
// resolves relative asset paths against the file's directory and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		cfg, err = parseYAML(data)
	default:
		cfg, err = parseINI(data)
	}
	if err != nil {
		return nil, err
	}

	cfg.resolvePaths(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &cfg, nil
}

func parseINI(data []byte) (*Config, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse INI: %w", err)
	}

	var cfg Config
	res := file.Section(SectionResolution)
	if cfg.Resolution.DiceSizePx, err = intKey(res, KeyDiceSizePx); err != nil {
		return nil, err
	}
	if cfg.Resolution.DiceImageSize, err = intKey(res, KeyDiceImageSize); err != nil {
		return nil, err
	}

	assets := file.Section(SectionAssets)
	var paths [dicemosaic.Faces]string
	for i := range paths {
		key := AssetKey(i + 1)
		if !assets.HasKey(key) {
			return nil, fmt.Errorf("%w: [%s] %s", ErrMissingKey, SectionAssets, key)
		}
		paths[i] = strings.TrimSpace(assets.Key(key).String())
	}
	cfg.Assets.SetPaths(paths)
	return &cfg, nil
}

func intKey(sec *ini.Section, key string) (int, error) {
	if !sec.HasKey(key) {
		return 0, fmt.Errorf("%w: [%s] %s", ErrMissingKey, sec.Name(), key)
	}
	v, err := sec.Key(key).Int()
	if err != nil {
		return 0, fmt.Errorf("invalid [%s] %s: %w", sec.Name(), key, err)
	}
	return v, nil
}

func (c *Config) resolvePaths(dir string) {
	paths := c.Assets.Paths()
	for i, p := range paths {
		if p != "" && !filepath.IsAbs(p) {
			paths[i] = filepath.Join(dir, p)
		}
	}
	c.Assets.SetPaths(paths)
}

// Validate checks that every key is present and positive.
func (c *Config) Validate() error {
	if c.Resolution.DiceSizePx == 0 {
		return fmt.Errorf("%w: [%s] %s", ErrMissingKey, SectionResolution, KeyDiceSizePx)
	}
	if c.Resolution.DiceSizePx < 0 {
		return fmt.Errorf("[%s] %s must be positive, got %d", SectionResolution, KeyDiceSizePx, c.Resolution.DiceSizePx)
	}
	if c.Resolution.DiceImageSize == 0 {
		return fmt.Errorf("%w: [%s] %s", ErrMissingKey, SectionResolution, KeyDiceImageSize)
	}
	if c.Resolution.DiceImageSize < 0 {
		return fmt.Errorf("[%s] %s must be positive, got %d", SectionResolution, KeyDiceImageSize, c.Resolution.DiceImageSize)
	}
	for i, p := range c.Assets.Paths() {
		if p == "" {
			return fmt.Errorf("%w: [%s] %s", ErrMissingKey, SectionAssets, AssetKey(i+1))
		}
	}
	return nil
}

// Write saves cfg as an INI file.
func Write(cfg *Config, path string) error {
	file := ini.Empty()
	res := file.Section(SectionResolution)
	res.Key(KeyDiceSizePx).SetValue(strconv.Itoa(cfg.Resolution.DiceSizePx))
	res.Key(KeyDiceImageSize).SetValue(strconv.Itoa(cfg.Resolution.DiceImageSize))
	assets := file.Section(SectionAssets)
	for i, p := range cfg.Assets.Paths() {
		assets.Key(AssetKey(i + 1)).SetValue(p)
	}
	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
