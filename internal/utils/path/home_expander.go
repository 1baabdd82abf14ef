package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	homeShortcutConstant               = "~"
	homeShortcutForwardPrefixConstant  = "~/"
	homeShortcutBackslashPrefixLiteral = "~\\"
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// HomeExpander replaces a leading home shortcut with the user's home directory.
type HomeExpander struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectory         string
	lookupError           error
	lookupOnce            sync.Once
}

// NewHomeExpander constructs a HomeExpander backed by os.UserHomeDir.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom home directory lookup.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &HomeExpander{homeDirectoryProvider: provider}
}

// Expand resolves "~", "~/..." and, on Windows-style input, "~\..." against the home directory.
// Other values, including "~user" forms, are returned unchanged.
func (expander *HomeExpander) Expand(candidatePath string) string {
	if expander == nil || !strings.HasPrefix(candidatePath, homeShortcutConstant) {
		return candidatePath
	}

	relativePath, expandable := trimHomeShortcut(candidatePath)
	if !expandable {
		return candidatePath
	}

	homeDirectory := expander.lookupHomeDirectory()
	if len(homeDirectory) == 0 {
		return candidatePath
	}
	if len(relativePath) == 0 {
		return homeDirectory
	}
	return filepath.Join(homeDirectory, relativePath)
}

func trimHomeShortcut(candidatePath string) (string, bool) {
	switch {
	case candidatePath == homeShortcutConstant:
		return "", true
	case strings.HasPrefix(candidatePath, homeShortcutForwardPrefixConstant):
		return strings.TrimPrefix(candidatePath, homeShortcutForwardPrefixConstant), true
	case os.PathSeparator == '\\' && strings.HasPrefix(candidatePath, homeShortcutBackslashPrefixLiteral):
		return strings.TrimPrefix(candidatePath, homeShortcutBackslashPrefixLiteral), true
	default:
		return "", false
	}
}

func (expander *HomeExpander) lookupHomeDirectory() string {
	expander.lookupOnce.Do(func() {
		expander.homeDirectory, expander.lookupError = expander.homeDirectoryProvider()
	})
	if expander.lookupError != nil {
		return ""
	}
	return expander.homeDirectory
}
