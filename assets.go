package beautify

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-beautify/internal/fileutil"
)

// LinkAssets places symlinks to the hand-written stylesheet and the shared
// asset directory alongside the output pages, creating the destination
// directory first. Links that already exist are left alone, so repeated
// runs are idempotent. Empty paths are skipped.
func LinkAssets(destination, stylesheet, assetDir string) error {
	if err := fileutil.EnsureDir(destination); err != nil {
		return err
	}

	for _, target := range []string{stylesheet, assetDir} {
		if target == "" {
			continue
		}
		abs, err := filepath.Abs(target)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", target, err)
		}
		link := filepath.Join(destination, filepath.Base(target))
		if err := fileutil.SymlinkIfMissing(abs, link); err != nil {
			return err
		}
	}
	return nil
}
