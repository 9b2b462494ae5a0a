package whitespace

import (
	"path/filepath"
	"regexp"
	"unicode/utf8"
)

// trailingWhitespacePattern matches a run of spaces or tabs followed by the end of a line.
// Line ends are end of content, LF, CR, LINE SEPARATOR, and PARAGRAPH SEPARATOR.
var trailingWhitespacePattern = regexp.MustCompile(`(?m)[ \t]+(?:$|\r|\x{2028}|\x{2029})`)

// ContentScanner finds the first line ending in horizontal whitespace in a file.
type ContentScanner struct {
	reader        FileReader
	rootDirectory string
}

// NewContentScanner constructs a scanner resolving repository paths against rootDirectory.
// An empty rootDirectory resolves paths against the process working directory.
func NewContentScanner(reader FileReader, rootDirectory string) *ContentScanner {
	return &ContentScanner{reader: reader, rootDirectory: rootDirectory}
}

// ScanFile reads the file at the repository-relative path and reports its first offending line.
// Unreadable and non-UTF-8 files are returned as skipped and never as offending.
func (scanner *ContentScanner) ScanFile(path string) ScanResult {
	content, readError := scanner.reader.ReadFile(scanner.resolvePath(path))
	if readError != nil {
		return ScanResult{Path: path, Skipped: true, SkipReason: SkipReasonUnreadable, SkipError: readError}
	}

	if !utf8.Valid(content) {
		return ScanResult{Path: path, Skipped: true, SkipReason: SkipReasonInvalidText, ContentSize: len(content)}
	}

	textContent := string(content)
	result := ScanResult{Path: path, ContentSize: len(content)}

	matchLocation := trailingWhitespacePattern.FindStringIndex(textContent)
	if matchLocation == nil {
		return result
	}

	result.Offending = true
	result.LineNumber = LocateLine(textContent, matchLocation[0])
	return result
}

func (scanner *ContentScanner) resolvePath(path string) string {
	localPath := filepath.FromSlash(path)
	if len(scanner.rootDirectory) == 0 {
		return localPath
	}
	return filepath.Join(scanner.rootDirectory, localPath)
}
