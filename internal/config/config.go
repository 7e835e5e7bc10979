// Package config loads the beautify.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-beautify/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// DefaultFileName is the config file looked up in the working directory
// when no --config flag is given.
const DefaultFileName = "beautify.yaml"

// Default paths, matching the layout the manual build produces.
const (
	DefaultSource      = "gnu-c-manual/c.html.d"
	DefaultDestination = "docs"
	DefaultCSSDir      = "css"
	DefaultStylesheet  = "css/styles.css"
	DefaultAssetDir    = "css/assets"
	DefaultPrevIcon    = "assets/icon-prev.svg"
	DefaultNextIcon    = "assets/icon-next.svg"
)

// Config holds the paths the beautifier operates on.
type Config struct {
	Source      string      `yaml:"source"`      // directory of generated pages
	Destination string      `yaml:"destination"` // output directory
	CSSDir      string      `yaml:"cssDir"`      // where highlights.css is generated
	Stylesheet  string      `yaml:"stylesheet"`  // hand-written stylesheet to link and symlink
	AssetDir    string      `yaml:"assetDir"`    // icon asset directory to symlink
	Icons       IconsConfig `yaml:"icons"`
}

// IconsConfig holds the navigation icon paths, relative to the output
// pages (they are emitted verbatim into img src attributes).
type IconsConfig struct {
	Prev string `yaml:"prev"`
	Next string `yaml:"next"`
}

// DefaultConfig returns a config with the standard manual layout.
func DefaultConfig() Config {
	return Config{
		Source:      DefaultSource,
		Destination: DefaultDestination,
		CSSDir:      DefaultCSSDir,
		Stylesheet:  DefaultStylesheet,
		AssetDir:    DefaultAssetDir,
		Icons: IconsConfig{
			Prev: DefaultPrevIcon,
			Next: DefaultNextIcon,
		},
	}
}

// Load reads and strictly parses a YAML config file. Fields absent from
// the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %q", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	return cfg, nil
}
