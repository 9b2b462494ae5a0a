package whitespace

import "strings"

// DefaultIgnoredExtensions lists suffixes of binary assets that are never scanned.
var DefaultIgnoredExtensions = []string{".ico", ".png"}

// ExtensionFilter drops paths ending in one of a fixed set of suffixes.
type ExtensionFilter struct {
	ignoredExtensions []string
}

// NewExtensionFilter copies ignoredExtensions so later changes to the slice do not affect the filter.
func NewExtensionFilter(ignoredExtensions []string) ExtensionFilter {
	return ExtensionFilter{ignoredExtensions: append([]string{}, ignoredExtensions...)}
}

// Filter returns the paths not ending in an ignored suffix, preserving order.
// Matching is case-sensitive; empty paths are dropped.
func (filter ExtensionFilter) Filter(paths []string) []string {
	retainedPaths := make([]string, 0, len(paths))
	for _, path := range paths {
		if len(path) == 0 || filter.isIgnored(path) {
			continue
		}
		retainedPaths = append(retainedPaths, path)
	}
	return retainedPaths
}

func (filter ExtensionFilter) isIgnored(path string) bool {
	for _, ignoredExtension := range filter.ignoredExtensions {
		if strings.HasSuffix(path, ignoredExtension) {
			return true
		}
	}
	return false
}
