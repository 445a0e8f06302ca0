// Package scan enumerates filesystem entries beneath a root directory in a
// deterministic order, applying visibility filters and an entry cap.
package scan

import "strings"

// Kind distinguishes directories from every other filesystem object.
type Kind string

const (
	// KindDirectory marks a directory entry.
	KindDirectory Kind = "directory"
	// KindFile marks any non-directory entry, symlinks included.
	KindFile Kind = "file"

	// HiddenPrefix marks a hidden path component.
	HiddenPrefix = "."

	pathSeparator = "/"
)

// Entry is one scanned filesystem object relative to the scan root.
type Entry struct {
	// Path is the slash-separated path relative to the root.
	Path       string
	Components []string
	Kind       Kind
}

// NewEntry builds an entry from a slash-separated relative path.
func NewEntry(relativePath string, kind Kind) Entry {
	trimmed := strings.Trim(relativePath, pathSeparator)
	return Entry{
		Path:       trimmed,
		Components: strings.Split(trimmed, pathSeparator),
		Kind:       kind,
	}
}

// Depth reports the number of path components.
func (entry Entry) Depth() int {
	return len(entry.Components)
}

// IsDir reports whether the entry is a directory.
func (entry Entry) IsDir() bool {
	return entry.Kind == KindDirectory
}

// IsHidden reports whether any component of the entry starts with HiddenPrefix.
// A hidden ancestor hides all of its descendants.
func (entry Entry) IsHidden() bool {
	for _, component := range entry.Components {
		if strings.HasPrefix(component, HiddenPrefix) {
			return true
		}
	}
	return false
}
