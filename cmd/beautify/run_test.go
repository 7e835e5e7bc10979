package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-beautify/internal/config"
)

// chdir stands in for t.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := loadConfig(pathFlags{})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Source != config.DefaultSource {
		t.Errorf("Source = %q, want default", cfg.Source)
	}
}

func TestLoadConfigPicksUpWorkingDirFile(t *testing.T) {
	dir := t.TempDir()
	content := "source: pages\ndestination: out\n"
	if err := os.WriteFile(filepath.Join(dir, config.DefaultFileName), []byte(content), 0o600); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	chdir(t, dir)

	cfg, err := loadConfig(pathFlags{})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Source != "pages" || cfg.Destination != "out" {
		t.Errorf("paths = %q/%q, want pages/out", cfg.Source, cfg.Destination)
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := loadConfig(pathFlags{source: "pages", destination: "out", stylesheet: "manual.css"})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Source != "pages" || cfg.Destination != "out" || cfg.Stylesheet != "manual.css" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.AssetDir != config.DefaultAssetDir {
		t.Errorf("AssetDir = %q, want default", cfg.AssetDir)
	}
}

func TestRunMissingSource(t *testing.T) {
	chdir(t, t.TempDir())

	flags := cliFlags{phases: phaseFlags{html: true}, quiet: true}
	err := run(flags, new(bytes.Buffer))
	if err == nil {
		t.Fatal("run() succeeded with a missing source directory")
	}
	if exitCodeFor(err) != ExitIO {
		t.Errorf("exit code = %d, want %d (%v)", exitCodeFor(err), ExitIO, err)
	}
}

func TestRunFullPipeline(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	// Lay out a minimal manual build: source pages, a hand-written
	// stylesheet, and an icon directory.
	source := filepath.Join(dir, "pages")
	if err := os.MkdirAll(source, 0o755); err != nil {
		t.Fatal(err)
	}
	page := `<html><head></head><body>
<pre class="example-preformatted">int x;</pre>
</body></html>`
	if err := os.WriteFile(filepath.Join(source, "index.html"), []byte(page), 0o600); err != nil {
		t.Fatal(err)
	}
	cssDir := filepath.Join(dir, "css")
	if err := os.MkdirAll(filepath.Join(cssDir, "assets"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cssDir, "styles.css"), []byte("body {}"), 0o600); err != nil {
		t.Fatal(err)
	}

	flags := cliFlags{
		phases: phaseFlags{css: true, html: true},
		paths: pathFlags{
			source:      source,
			destination: filepath.Join(dir, "docs"),
			stylesheet:  filepath.Join(cssDir, "styles.css"),
			assets:      filepath.Join(cssDir, "assets"),
		},
		quiet: true,
	}

	var out bytes.Buffer
	if err := run(flags, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(cssDir, "highlights.css")); err != nil {
		t.Errorf("highlights.css not generated: %v", err)
	}
	if _, err := os.Lstat(filepath.Join(dir, "docs", "styles.css")); err != nil {
		t.Errorf("stylesheet symlink missing: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "docs", "index.html"))
	if err != nil {
		t.Fatalf("output page missing: %v", err)
	}
	if !strings.Contains(string(data), `href="styles.css"`) {
		t.Error("output page does not link the stylesheet")
	}
	if !strings.Contains(out.String(), "file://") {
		t.Error("run() did not report the output index URL")
	}
}
