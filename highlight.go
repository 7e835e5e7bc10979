package beautify

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-beautify/internal/htmlutil"
)

// highlightStyle is the fixed visual theme for highlighted code.
const highlightStyle = "github"

// highlightLexer is the source language of the manual's code examples.
const highlightLexer = "c"

// chromaScopeClass is the class Chroma's stylesheet selectors are keyed
// to. The formatter puts it on a wrapper div around the rendering table;
// since the pass keeps only the table, the table takes the class over.
const chromaScopeClass = "chroma"

// codeHighlighter abstracts the code highlighting pass.
type codeHighlighter interface {
	Highlight(doc *goquery.Document) error
}

// chromaHighlighter replaces marked pre blocks with Chroma's line-number
// table rendering.
//
// Single-pass-only contract: re-running the pass over its own output would
// re-tokenize already-highlighted markup. The pipeline runs it exactly
// once per page and nothing guards against re-entry.
type chromaHighlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
	lexer     chroma.Lexer
}

func newChromaHighlighter() *chromaHighlighter {
	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}
	lexer := lexers.Get(highlightLexer)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &chromaHighlighter{
		formatter: newHighlightFormatter(),
		style:     style,
		lexer:     chroma.Coalesce(lexer),
	}
}

// newHighlightFormatter configures the HTML formatter shared by the
// highlighting pass and the stylesheet generator. Classes mode keeps the
// pages small and lets one external stylesheet restyle all of them.
func newHighlightFormatter() *chromahtml.Formatter {
	return chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.WithLineNumbers(true),
		chromahtml.LineNumbersInTable(true),
	)
}

// Highlight rewrites every pre block carrying the marker class, in
// document order. Blocks are independent; the first failure aborts.
func (h *chromaHighlighter) Highlight(doc *goquery.Document) error {
	var passErr error
	doc.Find("pre." + CodeClass).EachWithBreak(func(_ int, block *goquery.Selection) bool {
		table, err := h.renderTable(block.Text())
		if err != nil {
			passErr = err
			return false
		}
		block.ReplaceWithNodes(table)
		return true
	})
	return passErr
}

// renderTable highlights source text and extracts the single rendering
// table from the formatter's output fragment. Anything other than exactly
// one table breaks the contract with Chroma and is a hard failure.
func (h *chromaHighlighter) renderTable(source string) (*html.Node, error) {
	iterator, err := h.lexer.Tokenise(nil, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHighlight, err)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHighlight, err)
	}

	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(buf.String()), context)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing formatter output: %w", ErrHighlight, err)
	}

	tables := collectTables(nodes)
	if len(tables) != 1 {
		return nil, fmt.Errorf("%w: formatter output yielded %d tables, want exactly 1",
			ErrHighlight, len(tables))
	}

	table := tables[0]
	htmlutil.Detach(table)
	htmlutil.AddClass(table, chromaScopeClass)
	htmlutil.AddClass(table, CodeClass)
	return table, nil
}

func collectTables(fragment []*html.Node) []*html.Node {
	var tables []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Table {
			tables = append(tables, n)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, n := range fragment {
		walk(n)
	}
	return tables
}
