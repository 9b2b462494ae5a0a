package whitespace_test

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/trailspace/internal/filesystem"
	"github.com/temirov/trailspace/internal/whitespace"
)

type mapFileReader struct {
	contents     map[string]string
	readFailures map[string]error
	mutex        sync.Mutex
	requested    []string
}

func (reader *mapFileReader) ReadFile(path string) ([]byte, error) {
	reader.mutex.Lock()
	reader.requested = append(reader.requested, path)
	reader.mutex.Unlock()
	if readFailure, failureExists := reader.readFailures[path]; failureExists {
		return nil, readFailure
	}
	content, contentExists := reader.contents[path]
	if !contentExists {
		return nil, fs.ErrNotExist
	}
	return []byte(content), nil
}

func (reader *mapFileReader) requestedPaths() []string {
	reader.mutex.Lock()
	defer reader.mutex.Unlock()
	return append([]string{}, reader.requested...)
}

func TestContentScannerScanFile(testInstance *testing.T) {
	testCases := []struct {
		name               string
		content            string
		expectedOffending  bool
		expectedLineNumber int
		expectedSkipReason whitespace.SkipReason
	}{
		{name: "clean_file", content: "foo\nbar\n"},
		{name: "empty_file", content: ""},
		{name: "single_violation", content: "foo \nbar\n", expectedOffending: true, expectedLineNumber: 1},
		{name: "first_violation_only", content: "foo \nbar\t\nbaz\n", expectedOffending: true, expectedLineNumber: 1},
		{name: "violation_on_later_line", content: "a\nb\nc \t\n", expectedOffending: true, expectedLineNumber: 3},
		{name: "final_line_without_newline", content: "a\nb ", expectedOffending: true, expectedLineNumber: 2},
		{name: "whitespace_only_line", content: "a\n  \nb\n", expectedOffending: true, expectedLineNumber: 2},
		{name: "crlf_without_trailing_whitespace", content: "a\r\nb\r\n"},
		{name: "space_before_crlf", content: "a\r\nb \r\n", expectedOffending: true, expectedLineNumber: 2},
		{name: "leading_and_inner_whitespace_is_clean", content: "\tindented line\nx = 1\n"},
		{name: "other_unicode_spaces_are_clean", content: "a\u00a0\nb\u3000\n"},
		{name: "multibyte_prefix", content: "héllo\nwörld \n", expectedOffending: true, expectedLineNumber: 2},
		{name: "nul_bytes_are_scanned_as_text", content: "a\x00b \nc\n", expectedOffending: true, expectedLineNumber: 1},
		{name: "nul_byte_after_violation_line", content: "x\ny\t\n\x00\n", expectedOffending: true, expectedLineNumber: 2},
		{name: "space_before_lone_carriage_return", content: "a \rb", expectedOffending: true, expectedLineNumber: 1},
		{name: "lone_carriage_return_without_whitespace", content: "a\rb\r"},
		{name: "space_before_paragraph_separator", content: "a\u2028b \u2029", expectedOffending: true, expectedLineNumber: 1},
		{name: "tab_before_line_separator_on_later_line", content: "x\ny\t\u2028z\n", expectedOffending: true, expectedLineNumber: 2},
		{name: "tab_inside_line_before_line_separator", content: "a\tb\u2028"},
		{name: "invalid_utf8", content: "caf\xe9 \n", expectedSkipReason: whitespace.SkipReasonInvalidText},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			reader := &mapFileReader{contents: map[string]string{"file.txt": testCase.content}}
			scanner := whitespace.NewContentScanner(reader, "")

			result := scanner.ScanFile("file.txt")

			require.Equal(testInstance, "file.txt", result.Path)
			require.Equal(testInstance, testCase.expectedOffending, result.Offending)
			require.Equal(testInstance, testCase.expectedLineNumber, result.LineNumber)
			require.Equal(testInstance, testCase.expectedSkipReason, result.SkipReason)
			require.Equal(testInstance, testCase.expectedSkipReason != whitespace.SkipReasonNone, result.Skipped)
		})
	}
}

func TestContentScannerSkipsUnreadableFiles(testInstance *testing.T) {
	permissionFailure := errors.New("open secret.txt: permission denied")
	reader := &mapFileReader{
		contents:     map[string]string{},
		readFailures: map[string]error{"secret.txt": permissionFailure},
	}
	scanner := whitespace.NewContentScanner(reader, "")

	for _, path := range []string{"secret.txt", "deleted.txt"} {
		result := scanner.ScanFile(path)
		require.True(testInstance, result.Skipped)
		require.False(testInstance, result.Offending)
		require.Equal(testInstance, whitespace.SkipReasonUnreadable, result.SkipReason)
		require.Error(testInstance, result.SkipError)
	}
}

func TestContentScannerResolvesPathsAgainstRootDirectory(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	require.NoError(testInstance, os.MkdirAll(filepath.Join(rootDirectory, "docs"), 0o755))
	require.NoError(testInstance, os.WriteFile(filepath.Join(rootDirectory, "docs", "guide.md"), []byte("# Guide\ntext  \n"), 0o600))
	require.NoError(testInstance, os.MkdirAll(filepath.Join(rootDirectory, "vendor", "module"), 0o755))

	scanner := whitespace.NewContentScanner(filesystem.OSFileSystem{}, rootDirectory)

	result := scanner.ScanFile("docs/guide.md")
	require.True(testInstance, result.Offending)
	require.Equal(testInstance, 2, result.LineNumber)
	require.Equal(testInstance, "docs/guide.md", result.Path)

	directoryResult := scanner.ScanFile("vendor/module")
	require.True(testInstance, directoryResult.Skipped)
	require.Equal(testInstance, whitespace.SkipReasonUnreadable, directoryResult.SkipReason)
}
