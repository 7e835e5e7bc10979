package main

import (
	"fmt"
	"io"
	"path/filepath"

	beautify "github.com/alnah/go-beautify"
	"github.com/alnah/go-beautify/internal/config"
	"github.com/alnah/go-beautify/internal/fileutil"
)

// run executes the selected phases in fixed order: stylesheet generation,
// symlink setup, page processing.
func run(flags cliFlags, out io.Writer) error {
	cfg, err := loadConfig(flags.paths)
	if err != nil {
		return err
	}

	if flags.phases.css {
		if err := beautify.WriteHighlightStylesheet(cfg.CSSDir); err != nil {
			return err
		}
	}

	processing := flags.phases.html || flags.phases.page != ""
	if flags.phases.links || processing {
		if err := beautify.LinkAssets(cfg.Destination, cfg.Stylesheet, cfg.AssetDir); err != nil {
			return err
		}
	}
	if !processing {
		return nil
	}

	progress := out
	if flags.quiet {
		progress = io.Discard
	}
	svc := beautify.New(beautify.WithProgress(progress))

	icons := beautify.IconPair{Prev: cfg.Icons.Prev, Next: cfg.Icons.Next}
	// Pages link the stylesheet by its symlinked name next to them.
	stylesheet := filepath.Base(cfg.Stylesheet)

	if flags.phases.page != "" {
		return svc.ProcessPage(cfg.Source, cfg.Destination, flags.phases.page, stylesheet, icons)
	}

	if err := svc.ProcessDir(cfg.Source, cfg.Destination, stylesheet, icons); err != nil {
		return err
	}
	if index, err := filepath.Abs(filepath.Join(cfg.Destination, "index.html")); err == nil {
		fmt.Fprintf(out, "file://%s\n", index)
	}
	return nil
}

// loadConfig resolves the effective config: an explicit --config file, or
// beautify.yaml in the working directory when present, or built-in
// defaults; flag overrides are applied last.
func loadConfig(paths pathFlags) (config.Config, error) {
	cfg := config.DefaultConfig()

	switch {
	case paths.config != "":
		loaded, err := config.Load(paths.config)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	case fileutil.FileExists(config.DefaultFileName):
		loaded, err := config.Load(config.DefaultFileName)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if paths.source != "" {
		cfg.Source = paths.source
	}
	if paths.destination != "" {
		cfg.Destination = paths.destination
	}
	if paths.stylesheet != "" {
		cfg.Stylesheet = paths.stylesheet
	}
	if paths.assets != "" {
		cfg.AssetDir = paths.assets
	}
	return cfg, nil
}
