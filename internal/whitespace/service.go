package whitespace

import (
	"context"
	"errors"
	"runtime"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	minimumWorkerLimitConstant           = 4
	maximumWorkerLimitConstant           = 32
	workersPerProcessorConstant          = 2
	listerNotConfiguredMessageConstant   = "tracked file lister not configured"
	scannerNotConfiguredMessageConstant  = "file scanner not configured"
	reporterNotConfiguredMessageConstant = "violation reporter not configured"
	trackedFilesListedMessageConstant    = "tracked files listed"
	fileSkippedMessageConstant           = "file skipped"
	scanCompletedMessageConstant         = "trailing whitespace scan completed"
	logFieldTrackedFilesConstant         = "tracked_files"
	logFieldCandidateFilesConstant       = "candidate_files"
	logFieldIgnoredFilesConstant         = "ignored_files"
	logFieldScannedFilesConstant         = "scanned_files"
	logFieldSkippedFilesConstant         = "skipped_files"
	logFieldOffendingFilesConstant       = "offending_files"
	logFieldScannedBytesConstant         = "scanned_bytes"
	logFieldPathConstant                 = "path"
	logFieldReasonConstant               = "reason"
	logFieldWorkerLimitConstant          = "worker_limit"
)

var (
	// ErrListerNotConfigured indicates NewService received no TrackedFileLister.
	ErrListerNotConfigured = errors.New(listerNotConfiguredMessageConstant)
	// ErrScannerNotConfigured indicates NewService received no FileScanner.
	ErrScannerNotConfigured = errors.New(scannerNotConfiguredMessageConstant)
	// ErrReporterNotConfigured indicates NewService received no ViolationReporter.
	ErrReporterNotConfigured = errors.New(reporterNotConfiguredMessageConstant)
)

// ServiceDependencies groups the collaborators of a Service.
type ServiceDependencies struct {
	Lister      TrackedFileLister
	Filter      ExtensionFilter
	Scanner     FileScanner
	Reporter    ViolationReporter
	Logger      *zap.Logger
	WorkerLimit int
}

// Service runs one trailing whitespace check over the tracked files.
type Service struct {
	lister      TrackedFileLister
	filter      ExtensionFilter
	scanner     FileScanner
	reporter    ViolationReporter
	logger      *zap.Logger
	workerLimit int
}

// NewService validates dependencies and applies defaults for the logger and worker limit.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.Lister == nil {
		return nil, ErrListerNotConfigured
	}
	if dependencies.Scanner == nil {
		return nil, ErrScannerNotConfigured
	}
	if dependencies.Reporter == nil {
		return nil, ErrReporterNotConfigured
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	workerLimit := dependencies.WorkerLimit
	if workerLimit <= 0 {
		workerLimit = DefaultWorkerLimit()
	}

	return &Service{
		lister:      dependencies.Lister,
		filter:      dependencies.Filter,
		scanner:     dependencies.Scanner,
		reporter:    dependencies.Reporter,
		logger:      logger,
		workerLimit: workerLimit,
	}, nil
}

// DefaultWorkerLimit returns twice the processor count clamped to [4, 32].
func DefaultWorkerLimit() int {
	workerLimit := runtime.NumCPU() * workersPerProcessorConstant
	if workerLimit < minimumWorkerLimitConstant {
		return minimumWorkerLimitConstant
	}
	if workerLimit > maximumWorkerLimitConstant {
		return maximumWorkerLimitConstant
	}
	return workerLimit
}

// Run lists, filters, and scans the tracked files, reporting each offending file as its scan completes.
// A listing failure is reported and returned as OperationalError before any file is scanned.
// After every scan has finished, PolicyViolationError is returned if any file offended.
func (service *Service) Run(executionContext context.Context) (Summary, error) {
	trackedPaths, listingError := service.lister.ListTrackedFiles(executionContext)
	if listingError != nil {
		operationalError := OperationalError{Cause: listingError}
		service.reporter.ReportOperationalFailure(operationalError)
		return Summary{}, operationalError
	}

	candidatePaths := service.filter.Filter(trackedPaths)
	service.logger.Debug(
		trackedFilesListedMessageConstant,
		zap.Int(logFieldTrackedFilesConstant, len(trackedPaths)),
		zap.Int(logFieldCandidateFilesConstant, len(candidatePaths)),
		zap.Int(logFieldWorkerLimitConstant, service.workerLimit),
	)

	scanResults, scanError := service.scanAll(executionContext, candidatePaths)
	if scanError != nil {
		return Summary{}, scanError
	}

	summary := summarizeResults(len(trackedPaths), len(candidatePaths), scanResults)
	service.logger.Info(
		scanCompletedMessageConstant,
		zap.Int(logFieldTrackedFilesConstant, summary.TrackedFiles),
		zap.Int(logFieldIgnoredFilesConstant, summary.IgnoredFiles),
		zap.Int(logFieldScannedFilesConstant, summary.ScannedFiles),
		zap.Int(logFieldSkippedFilesConstant, summary.SkippedFiles),
		zap.Int(logFieldOffendingFilesConstant, summary.OffendingFiles),
		zap.String(logFieldScannedBytesConstant, humanize.Bytes(uint64(summary.ScannedBytes))),
	)

	if summary.OffendingFiles > 0 {
		return summary, PolicyViolationError{OffendingFiles: summary.OffendingFiles}
	}
	return summary, nil
}

// scanAll scans every path on a bounded pool and waits for all scans before returning.
// Each task owns one slot of the result slice.
func (service *Service) scanAll(executionContext context.Context, candidatePaths []string) ([]ScanResult, error) {
	scanResults := make([]ScanResult, len(candidatePaths))

	scanGroup, groupContext := errgroup.WithContext(executionContext)
	scanGroup.SetLimit(service.workerLimit)

	for pathIndex, candidatePath := range candidatePaths {
		scanGroup.Go(func() error {
			if contextError := groupContext.Err(); contextError != nil {
				return contextError
			}
			scanResult := service.scanner.ScanFile(candidatePath)
			scanResults[pathIndex] = scanResult
			service.handleResult(scanResult)
			return nil
		})
	}

	if waitError := scanGroup.Wait(); waitError != nil {
		return nil, waitError
	}
	return scanResults, nil
}

func (service *Service) handleResult(scanResult ScanResult) {
	if scanResult.Skipped {
		service.logger.Debug(
			fileSkippedMessageConstant,
			zap.String(logFieldPathConstant, scanResult.Path),
			zap.String(logFieldReasonConstant, string(scanResult.SkipReason)),
			zap.Error(scanResult.SkipError),
		)
		return
	}
	if scanResult.Offending {
		service.reporter.ReportViolation(scanResult)
	}
}
