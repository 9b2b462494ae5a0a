package whitespace_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/trailspace/internal/whitespace"
)

func TestWriterReporterFormatsDiagnostics(testInstance *testing.T) {
	testCases := []struct {
		name           string
		report         func(reporter *whitespace.WriterReporter)
		expectedOutput string
	}{
		{
			name: "violation",
			report: func(reporter *whitespace.WriterReporter) {
				reporter.ReportViolation(whitespace.ScanResult{Path: "docs/guide.md", Offending: true, LineNumber: 12})
			},
			expectedOutput: "Found trailing whitespaces: docs/guide.md:12\n",
		},
		{
			name: "violation_with_unknown_line",
			report: func(reporter *whitespace.WriterReporter) {
				reporter.ReportViolation(whitespace.ScanResult{Path: "notes.txt", Offending: true, LineNumber: whitespace.LineNotFound})
			},
			expectedOutput: "Found trailing whitespaces: notes.txt:-1\n",
		},
		{
			name: "operational_failure",
			report: func(reporter *whitespace.WriterReporter) {
				reporter.ReportOperationalFailure(whitespace.OperationalError{Cause: errors.New("fatal: Not a valid object name HEAD")})
			},
			expectedOutput: "Unexpected error occurred: fatal: Not a valid object name HEAD\n",
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			outputBuffer := &bytes.Buffer{}
			testCase.report(whitespace.NewWriterReporter(outputBuffer))
			require.Equal(testInstance, testCase.expectedOutput, outputBuffer.String())
		})
	}
}

func TestWriterReporterKeepsConcurrentLinesIntact(testInstance *testing.T) {
	outputBuffer := &bytes.Buffer{}
	reporter := whitespace.NewWriterReporter(outputBuffer)

	const reportCount = 64
	var waitGroup sync.WaitGroup
	for reportIndex := 0; reportIndex < reportCount; reportIndex++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			reporter.ReportViolation(whitespace.ScanResult{Path: fmt.Sprintf("file-%02d.txt", reportIndex), Offending: true, LineNumber: reportIndex + 1})
		}()
	}
	waitGroup.Wait()

	reportedLines := strings.Split(strings.TrimSuffix(outputBuffer.String(), "\n"), "\n")
	require.Len(testInstance, reportedLines, reportCount)
	for _, reportedLine := range reportedLines {
		require.True(testInstance, strings.HasPrefix(reportedLine, "Found trailing whitespaces: file-"), reportedLine)
	}
}

func TestExitStatusErrors(testInstance *testing.T) {
	listingFailure := errors.New("fatal: bad revision")

	operationalError := whitespace.OperationalError{Cause: listingFailure}
	require.Equal(testInstance, whitespace.ExitCodeOperationalFailure, operationalError.ExitCode())
	require.ErrorIs(testInstance, operationalError, listingFailure)

	violationError := whitespace.PolicyViolationError{OffendingFiles: 3}
	require.Equal(testInstance, whitespace.ExitCodePolicyViolation, violationError.ExitCode())
	require.Equal(testInstance, "trailing whitespace found in 3 file(s)", violationError.Error())

	wrappedViolation := fmt.Errorf("check: %w", violationError)
	var exitStatusError whitespace.ExitStatusError
	require.ErrorAs(testInstance, wrappedViolation, &exitStatusError)
	require.Equal(testInstance, whitespace.ExitCodePolicyViolation, exitStatusError.ExitCode())
}
