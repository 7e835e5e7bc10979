package main

import (
	"errors"

	flag "github.com/spf13/pflag"
)

// ErrNoPhase is returned when no phase flag selects any work.
var ErrNoPhase = errors.New("choose at least one of --css, --html, --page, --links")

// phaseFlags selects which phases of the run to execute.
type phaseFlags struct {
	css   bool   // generate highlights.css
	html  bool   // process every page
	page  string // process one named page
	links bool   // symlink setup only
}

// pathFlags overrides config-file paths.
type pathFlags struct {
	config      string
	source      string
	destination string
	stylesheet  string
	assets      string
}

// cliFlags holds all parsed command line flags.
type cliFlags struct {
	phases  phaseFlags
	paths   pathFlags
	quiet   bool
	version bool
}

// parseFlags parses command line arguments (including the program name at
// args[0]) into cliFlags.
func parseFlags(args []string) (cliFlags, error) {
	var flags cliFlags

	fs := flag.NewFlagSet("beautify", flag.ContinueOnError)
	fs.BoolVar(&flags.phases.css, "css", false, "generate the highlighting stylesheet")
	fs.BoolVar(&flags.phases.html, "html", false, "process every page in the source directory")
	fs.StringVar(&flags.phases.page, "page", "", "process a single named page (e.g. Functions.html)")
	fs.BoolVar(&flags.phases.links, "links", false, "create output symlinks only")
	fs.StringVar(&flags.paths.config, "config", "", "path to a beautify.yaml config file")
	fs.StringVar(&flags.paths.source, "source", "", "override the source directory")
	fs.StringVar(&flags.paths.destination, "dest", "", "override the destination directory")
	fs.StringVar(&flags.paths.stylesheet, "stylesheet", "", "override the linked stylesheet path")
	fs.StringVar(&flags.paths.assets, "assets", "", "override the icon asset directory")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress per-page progress output")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return cliFlags{}, err
	}

	if flags.version {
		return flags, nil
	}
	if !flags.phases.css && !flags.phases.html && flags.phases.page == "" && !flags.phases.links {
		return cliFlags{}, ErrNoPhase
	}
	return flags, nil
}
