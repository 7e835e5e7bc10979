// Package beautify post-processes generator-emitted HTML manual pages.
//
// # Quick Start
//
// Create a service and run it over a directory of pages:
//
//	svc := beautify.New()
//	err := svc.ProcessDir("c.html.d", "docs", "styles.css", beautify.IconPair{
//	    Prev: "assets/icon-prev.svg",
//	    Next: "assets/icon-next.svg",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Rewriting Pipeline
//
// Each page is parsed into a document tree and rewritten in place by four
// passes, applied in fixed order:
//
//  1. Stylesheet link injection into <head>
//  2. Code block highlighting via Chroma (line-number table rendering)
//  3. Navbar restructuring (grouped index/topic links, prev/next icons)
//  4. Mini table-of-contents rewriting (ordered, labeled, repositioned)
//
// Pages are processed strictly one at a time; no state is shared across
// pages. Structural assumptions about the input markup are enforced with
// fail-fast errors wrapping ErrInvalidStructure: the run stops rather than
// emitting a page with broken navigation or TOC markup.
//
// # Input Convention
//
// Pages are expected to follow the manual generator's marker classes:
// "example-preformatted" on code blocks, "nav-panel" on navigation blocks,
// "mini-toc" on the per-section contents list, and "<word>-level-extent"
// next to a heading classed with the bare level word.
package beautify
