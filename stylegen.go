package beautify

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-beautify/internal/fileutil"
)

// WriteHighlightStylesheet generates the highlights.css stylesheet in dir:
// the style definitions for the classes the Code Highlighter emits, for
// the same fixed theme the highlighting pass renders with.
func WriteHighlightStylesheet(dir string) error {
	if err := fileutil.EnsureDir(dir); err != nil {
		return err
	}

	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}

	path := filepath.Join(dir, StylesheetName)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating stylesheet: %w", err)
	}
	if err := newHighlightFormatter().WriteCSS(f, style); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing stylesheet: %w", err)
	}
	return f.Close()
}
