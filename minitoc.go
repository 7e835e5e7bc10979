package beautify

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/alnah/go-beautify/internal/htmlutil"
)

// extentPattern recognizes the "<word>-level-extent" marker class carried
// by the element delimiting a heading tier (chapter, section, ...).
var extentPattern = regexp.MustCompile(`(?:^|\s)([A-Za-z]+)-level-extent(?:\s|$)`)

// miniTOCRewriter abstracts the mini table-of-contents pass.
type miniTOCRewriter interface {
	Rewrite(doc *goquery.Document) error
}

// tocRewriter converts the flat bulleted mini-TOC into a labeled ordered
// list inserted right after the section heading.
type tocRewriter struct{}

func (tocRewriter) Rewrite(doc *goquery.Document) error {
	list := doc.Find("ul." + MiniTOCClass).First()
	if list.Length() == 0 {
		return nil
	}
	// Ordering is semantically meaningful now: numbered, not bulleted.
	htmlutil.Retag(list.Get(0), "ol")

	level := findExtentLevel(doc)
	if level == "" {
		// No extent marker: the retagged list stays in place, unwrapped.
		return nil
	}

	heading := doc.Find(headingSelector(level)).First()
	if heading.Length() == 0 {
		return fmt.Errorf("%w: extent marker %q has no matching %q heading",
			ErrInvalidStructure, level+"-level-extent", level)
	}

	wrapper := htmlutil.NewElement("div", "class", MiniContentClass)
	header := htmlutil.NewElement("span")
	header.AppendChild(htmlutil.NewText(capitalize(level) + " Content"))
	wrapper.AppendChild(header)

	node := list.Get(0)
	htmlutil.Detach(node)
	wrapper.AppendChild(node)

	htmlutil.InsertAfter(heading.Get(0), wrapper)
	// The wrapper may overflow its container; downstream styling keys off
	// this class on the parent.
	heading.Parent().AddClass(ContainFloatClass)
	return nil
}

// findExtentLevel returns the level word of the first element whose class
// list matches the extent pattern, in document order, or "" if none.
func findExtentLevel(doc *goquery.Document) string {
	var level string
	doc.Find(`[class*="-level-extent"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		if m := extentPattern.FindStringSubmatch(class); m != nil {
			level = m[1]
			return false
		}
		return true
	})
	return level
}

// headingSelector matches any heading whose class list contains the bare
// level word, e.g. "h2.section".
func headingSelector(level string) string {
	tags := [...]string{"h1", "h2", "h3", "h4", "h5", "h6"}
	selectors := make([]string, len(tags))
	for i, tag := range tags {
		selectors[i] = tag + "." + level
	}
	return strings.Join(selectors, ", ")
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
