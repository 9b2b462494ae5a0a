package whitespace

import (
	"context"

	"go.uber.org/zap"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// TrackedFileLister lists the files tracked by the repository.
type TrackedFileLister interface {
	ListTrackedFiles(executionContext context.Context) ([]string, error)
}

// FileReader reads whole files.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// FileScanner scans one repository-relative path.
type FileScanner interface {
	ScanFile(path string) ScanResult
}

// ViolationReporter prints diagnostics; implementations must be safe for concurrent use.
type ViolationReporter interface {
	ReportViolation(result ScanResult)
	ReportOperationalFailure(failure OperationalError)
}
