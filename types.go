package beautify

// Marker classes emitted by the manual generator. These are structural
// selectors, not visual styles: the passes use them to find the nodes they
// rewrite.
const (
	// CodeClass marks preformatted code blocks to highlight.
	CodeClass = "example-preformatted"
	// NavPanelClass marks legacy flat navigation blocks.
	NavPanelClass = "nav-panel"
	// MiniTOCClass marks the flat per-section contents list.
	MiniTOCClass = "mini-toc"
)

// Classes introduced by the passes.
const (
	// NavIndexClass groups the contents/index links in a rebuilt navbar.
	NavIndexClass = "nav-index"
	// NavTopicsClass groups the prev/up/next links in a rebuilt navbar.
	NavTopicsClass = "nav-topics"
	// NavEmptyClass marks a placeholder for an absent navigation link.
	// Placeholders keep the slot count fixed so a missing "up" link does
	// not collapse the layout.
	NavEmptyClass = "nav-empty"
	// NavLabelClass wraps the text of a decorated prev/up/next link.
	NavLabelClass = "nav-label"
	// NavIconClass marks the prev/next icon images.
	NavIconClass = "nav-icon"
	// MiniContentClass wraps the rewritten mini table-of-contents.
	MiniContentClass = "mini-content"
	// ContainFloatClass signals that a container may hold floated content.
	ContainFloatClass = "contain-float"
)

// StylesheetName is the generated highlighting stylesheet file name.
const StylesheetName = "highlights.css"

// IconPair holds the icon paths used to decorate prev/next navigation
// links. Paths are emitted verbatim into img src attributes, so they must
// be relative to the output pages.
type IconPair struct {
	Prev string
	Next string
}
