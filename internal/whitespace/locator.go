package whitespace

import "strings"

// LineNotFound is returned by LocateLine when the offset lies outside the content.
const LineNotFound = -1

const lineTerminatorConstant = "\n"

// LocateLine returns the 1-based number of the line containing the byte offset.
// Every line spans its length plus one terminator byte.
func LocateLine(content string, offset int) int {
	if offset < 0 {
		return LineNotFound
	}

	lineStart := 0
	for lineIndex, line := range strings.Split(content, lineTerminatorConstant) {
		lineSpan := len(line) + 1
		if lineStart+lineSpan > offset {
			return lineIndex + 1
		}
		lineStart += lineSpan
	}
	return LineNotFound
}
