package beautify

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/alnah/go-beautify/internal/htmlutil"
)

// stylesheetLinker abstracts the stylesheet injection pass.
type stylesheetLinker interface {
	Link(doc *goquery.Document, href string) error
}

// headLink appends a stylesheet <link> to the document head.
//
// Not idempotent: repeated calls duplicate the link. The pipeline invokes
// it exactly once per page.
type headLink struct{}

func (headLink) Link(doc *goquery.Document, href string) error {
	head := doc.Find("head").First()
	if head.Length() == 0 {
		return fmt.Errorf("%w: page has no <head> element", ErrInvalidStructure)
	}
	head.AppendNodes(htmlutil.NewElement("link",
		"rel", "stylesheet",
		"type", "text/css",
		"href", href,
	))
	return nil
}
