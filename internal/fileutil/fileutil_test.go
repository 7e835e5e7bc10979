package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "page.html")
	if err := os.WriteFile(file, []byte("<html></html>"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "regular file", path: file, want: true},
		{name: "directory", path: dir, want: false},
		{name: "missing", path: filepath.Join(dir, "nope"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "page.html")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if !DirExists(dir) {
		t.Error("DirExists(dir) = false, want true")
	}
	if DirExists(file) {
		t.Error("DirExists(file) = true, want false")
	}
	if DirExists(filepath.Join(dir, "nope")) {
		t.Error("DirExists(missing) = true, want false")
	}
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if !DirExists(path) {
		t.Fatal("directory not created")
	}
	// Existing directory is fine.
	if err := EnsureDir(path); err != nil {
		t.Errorf("EnsureDir() on existing dir error = %v", err)
	}
}

func TestSymlinkIfMissing(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "styles.css")
	if err := os.WriteFile(target, []byte("body {}"), 0o600); err != nil {
		t.Fatalf("writing target: %v", err)
	}
	link := filepath.Join(dir, "link.css")

	if err := SymlinkIfMissing(target, link); err != nil {
		t.Fatalf("SymlinkIfMissing() error = %v", err)
	}
	got, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("reading link: %v", err)
	}
	if got != target {
		t.Errorf("link target = %q, want %q", got, target)
	}

	// An existing link is left untouched, even with a different target.
	if err := SymlinkIfMissing(filepath.Join(dir, "other"), link); err != nil {
		t.Fatalf("second SymlinkIfMissing() error = %v", err)
	}
	if got, _ := os.Readlink(link); got != target {
		t.Errorf("existing link was replaced: %q", got)
	}
}
