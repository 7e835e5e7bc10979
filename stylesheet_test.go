package beautify

import (
	"errors"
	"testing"
)

func TestHeadLink(t *testing.T) {
	tests := []struct {
		name string
		page string
		href string
	}{
		{
			name: "empty head",
			page: `<html><head></head><body></body></html>`,
			href: "styles.css",
		},
		{
			name: "head with existing content",
			page: `<html><head><title>Functions</title><meta charset="utf-8"></head><body></body></html>`,
			href: "styles.css",
		},
		{
			name: "relative path href",
			page: `<html><head></head><body></body></html>`,
			href: "../css/styles.css",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseDoc(t, tt.page)

			if err := (headLink{}).Link(doc, tt.href); err != nil {
				t.Fatalf("Link() error = %v", err)
			}

			links := doc.Find(`head link[rel="stylesheet"]`)
			if links.Length() != 1 {
				t.Fatalf("stylesheet links = %d, want 1", links.Length())
			}
			if href, _ := links.Attr("href"); href != tt.href {
				t.Errorf("href = %q, want %q", href, tt.href)
			}
			if typ, _ := links.Attr("type"); typ != "text/css" {
				t.Errorf("type = %q, want text/css", typ)
			}
			// The link must land at the end of head, after prior content.
			if !doc.Find("head").Children().Last().Is("link") {
				t.Error("stylesheet link is not the last head child")
			}
		})
	}
}

func TestHeadLinkNotIdempotent(t *testing.T) {
	// Repeated calls duplicate the link; the pipeline relies on calling
	// the pass exactly once per page.
	doc := parseDoc(t, `<html><head></head><body></body></html>`)

	if err := (headLink{}).Link(doc, "styles.css"); err != nil {
		t.Fatalf("first Link() error = %v", err)
	}
	if err := (headLink{}).Link(doc, "styles.css"); err != nil {
		t.Fatalf("second Link() error = %v", err)
	}

	if got := doc.Find(`head link[rel="stylesheet"]`).Length(); got != 2 {
		t.Errorf("stylesheet links after two calls = %d, want 2", got)
	}
}

func TestHeadLinkMissingHead(t *testing.T) {
	// html.Parse always supplies a head, so remove it before linking to
	// exercise the failure path.
	doc := parseDoc(t, `<html><head></head><body></body></html>`)
	doc.Find("head").Remove()

	err := (headLink{}).Link(doc, "styles.css")
	if !errors.Is(err, ErrInvalidStructure) {
		t.Errorf("Link() error = %v, want ErrInvalidStructure", err)
	}
}
