package whitespace

// SkipReason explains why a tracked file was not scanned.
type SkipReason string

// Reasons a file is skipped rather than scanned.
const (
	SkipReasonNone        SkipReason = ""
	SkipReasonUnreadable  SkipReason = "unreadable"
	SkipReasonInvalidText SkipReason = "invalid_utf8"
)

// ScanResult is the outcome of scanning one file.
// LineNumber is meaningful only when Offending is true and may be LineNotFound.
type ScanResult struct {
	Path        string
	Offending   bool
	LineNumber  int
	Skipped     bool
	SkipReason  SkipReason
	SkipError   error
	ContentSize int
}

// Summary aggregates the scan results of a single run.
type Summary struct {
	TrackedFiles   int
	IgnoredFiles   int
	ScannedFiles   int
	SkippedFiles   int
	OffendingFiles int
	ScannedBytes   int64
}

func summarizeResults(trackedFileCount int, candidateFileCount int, results []ScanResult) Summary {
	summary := Summary{
		TrackedFiles: trackedFileCount,
		IgnoredFiles: trackedFileCount - candidateFileCount,
	}
	for _, result := range results {
		if result.Skipped {
			summary.SkippedFiles++
			continue
		}
		summary.ScannedFiles++
		summary.ScannedBytes += int64(result.ContentSize)
		if result.Offending {
			summary.OffendingFiles++
		}
	}
	return summary
}
