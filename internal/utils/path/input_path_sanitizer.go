package pathutils

import (
	"path/filepath"
	"strings"
)

// InputPathSanitizer normalizes investigation file arguments before they are loaded.
type InputPathSanitizer struct {
	homeExpander *HomeExpander
}

// NewInputPathSanitizer constructs an InputPathSanitizer using the operating system home directory.
func NewInputPathSanitizer() *InputPathSanitizer {
	return NewInputPathSanitizerWithExpander(nil)
}

// NewInputPathSanitizerWithExpander constructs an InputPathSanitizer with the provided expander.
func NewInputPathSanitizerWithExpander(homeExpander *HomeExpander) *InputPathSanitizer {
	if homeExpander == nil {
		homeExpander = NewHomeExpander()
	}
	return &InputPathSanitizer{homeExpander: homeExpander}
}

// Sanitize trims whitespace, drops blank entries, expands the home shortcut and cleans each path.
// Repeated paths keep their first position only. The result is nil when nothing remains.
func (sanitizer *InputPathSanitizer) Sanitize(candidatePaths []string) []string {
	expander := NewHomeExpander()
	if sanitizer != nil && sanitizer.homeExpander != nil {
		expander = sanitizer.homeExpander
	}

	var sanitizedPaths []string
	seenPaths := make(map[string]struct{}, len(candidatePaths))
	for _, candidatePath := range candidatePaths {
		trimmedPath := strings.TrimSpace(candidatePath)
		if len(trimmedPath) == 0 {
			continue
		}

		cleanedPath := filepath.Clean(expander.Expand(trimmedPath))
		if _, seen := seenPaths[cleanedPath]; seen {
			continue
		}
		seenPaths[cleanedPath] = struct{}{}
		sanitizedPaths = append(sanitizedPaths, cleanedPath)
	}

	return sanitizedPaths
}
