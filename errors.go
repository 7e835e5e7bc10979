package beautify

import "errors"

// Sentinel errors for library operations.
var (
	// User input errors: reported as a message, no partial output committed.
	ErrSourceNotFound = errors.New("source directory not found")
	ErrPageNotFound   = errors.New("page not found")

	// ErrInvalidStructure marks a structural invariant violation in the input
	// markup: the page does not follow the manual generator's convention.
	// These are unrecoverable; the run aborts rather than emitting a
	// malformed page. Wrapping errors carry the violated assumption, e.g.
	// an unexpected navbar count or a missing section heading.
	ErrInvalidStructure = errors.New("structural invariant violation")

	// ErrHighlight indicates the highlighting transform failed or did not
	// yield exactly one rendering table. The table contract is with
	// Chroma's HTML formatter, not a recoverable condition.
	ErrHighlight = errors.New("code highlighting failed")
)
