package main

import (
	"errors"
	"os"

	beautify "github.com/alnah/go-beautify"
	"github.com/alnah/go-beautify/internal/config"
)

// Exit codes for the beautify CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful run
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags or config
	ExitIO        = 3 // Missing source/page, file not found, permission denied
	ExitStructure = 4 // Input markup violated a structural invariant
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Structural invariant violations (exit 4)
	if errors.Is(err, beautify.ErrInvalidStructure) ||
		errors.Is(err, beautify.ErrHighlight) {
		return ExitStructure
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, beautify.ErrSourceNotFound) ||
		errors.Is(err, beautify.ErrPageNotFound) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrNoPhase) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) {
		return ExitUsage
	}

	return ExitGeneral
}
