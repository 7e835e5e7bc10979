package beautify

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/alnah/go-beautify/internal/fileutil"
)

// Service orchestrates the page-rewriting pipeline.
type Service struct {
	cfg       serviceConfig
	linker    stylesheetLinker
	highlight codeHighlighter
	navbar    navbarRebuilder
	minitoc   miniTOCRewriter
}

type serviceConfig struct {
	progress io.Writer
}

// Option customizes a Service.
type Option func(*Service)

// WithProgress redirects per-page progress output (default os.Stdout).
// Pass io.Discard to silence it.
func WithProgress(w io.Writer) Option {
	return func(s *Service) { s.cfg.progress = w }
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:       serviceConfig{progress: os.Stdout},
		linker:    headLink{},
		highlight: newChromaHighlighter(),
		navbar:    panelRebuilder{},
		minitoc:   tocRewriter{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Process applies the four rewriting passes to one parsed page in fixed
// order: link stylesheet, highlight code, rebuild navbar, rewrite
// mini-TOC. The document is mutated in place. Process must be called at
// most once per document; the stylesheet link and the highlighting pass
// are not idempotent.
func (s *Service) Process(doc *goquery.Document, stylesheet string, icons IconPair) error {
	if err := s.linker.Link(doc, stylesheet); err != nil {
		return err
	}
	if err := s.highlight.Highlight(doc); err != nil {
		return err
	}
	if err := s.navbar.Rebuild(doc, icons); err != nil {
		return err
	}
	return s.minitoc.Rewrite(doc)
}

// ProcessDir rewrites every *.html page under source into destination,
// one page at a time. Each page gets a fresh document tree; no state
// crosses page boundaries. The first failure aborts the run.
func (s *Service) ProcessDir(source, destination, stylesheet string, icons IconPair) error {
	if !fileutil.DirExists(source) {
		return fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if err := fileutil.EnsureDir(destination); err != nil {
		return err
	}

	// Glob returns names in sorted order, which fixes the enumeration
	// order of the run.
	pages, err := filepath.Glob(filepath.Join(source, "*.html"))
	if err != nil {
		return fmt.Errorf("listing pages: %w", err)
	}

	for _, page := range pages {
		if !fileutil.FileExists(page) {
			continue
		}
		fmt.Fprintf(s.cfg.progress, "Processing: %s\n", page)
		out := filepath.Join(destination, filepath.Base(page))
		if err := s.processFile(page, out, stylesheet, icons); err != nil {
			return fmt.Errorf("%s: %w", page, err)
		}
	}
	return nil
}

// ProcessPage rewrites a single named page from source into destination.
func (s *Service) ProcessPage(source, destination, name, stylesheet string, icons IconPair) error {
	page := filepath.Join(source, name)
	if !fileutil.FileExists(page) {
		return fmt.Errorf("%w: %q", ErrPageNotFound, page)
	}
	if err := fileutil.EnsureDir(destination); err != nil {
		return err
	}

	fmt.Fprintf(s.cfg.progress, "Processing: %s\n", page)
	if err := s.processFile(page, filepath.Join(destination, name), stylesheet, icons); err != nil {
		return fmt.Errorf("%s: %w", page, err)
	}
	return nil
}

// processFile parses one page, runs the pipeline, and writes the result.
// One read, one write; nothing is committed when a pass fails.
func (s *Service) processFile(inPath, outPath, stylesheet string, icons IconPair) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("reading page: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(in)
	closeErr := in.Close()
	if err != nil {
		return fmt.Errorf("parsing page: %w", err)
	}
	if closeErr != nil {
		return fmt.Errorf("reading page: %w", closeErr)
	}

	if err := s.Process(doc, stylesheet, icons); err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("writing page: %w", err)
	}
	if err := html.Render(out, doc.Get(0)); err != nil {
		_ = out.Close()
		return fmt.Errorf("rendering page: %w", err)
	}
	return out.Close()
}
