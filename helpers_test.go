package beautify

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// parseDoc parses a page fixture into a document tree.
// html.Parse supplies html/head/body wrappers for partial fixtures.
func parseDoc(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return doc
}

// renderDoc serializes a document tree back to HTML for inspection.
func renderDoc(t *testing.T, doc *goquery.Document) string {
	t.Helper()
	out, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		t.Fatalf("rendering document: %v", err)
	}
	return out
}
