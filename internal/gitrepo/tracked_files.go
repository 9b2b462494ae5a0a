package gitrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/trailspace/internal/execshell"
)

const (
	gitLSTreeSubcommandConstant          = "ls-tree"
	gitRecursiveFlagConstant             = "-r"
	gitNameOnlyFlagConstant              = "--name-only"
	gitHeadReferenceConstant             = "HEAD"
	trackedPathSeparatorConstant         = "\n"
	executorNotConfiguredMessageConstant = "git executor not configured"
	unknownListingFailureMessageConstant = "git ls-tree failed"
)

// ErrExecutorNotConfigured indicates a TrackedFileLister was built without a GitExecutor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// GitExecutor exposes the subset of shell execution used to query repositories.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ListingError reports that git could not list the tracked files.
// Diagnostic holds git's standard error text, or the execution failure when git never ran.
type ListingError struct {
	Diagnostic string
	Cause      error
}

// Error returns the diagnostic text produced by git.
func (listingError ListingError) Error() string {
	if trimmedDiagnostic := strings.TrimSpace(listingError.Diagnostic); len(trimmedDiagnostic) > 0 {
		return trimmedDiagnostic
	}
	if listingError.Cause != nil {
		return listingError.Cause.Error()
	}
	return unknownListingFailureMessageConstant
}

// Unwrap exposes the underlying executor failure when present.
func (listingError ListingError) Unwrap() error {
	return listingError.Cause
}

// TrackedFileLister lists files recorded in the HEAD tree of the repository.
type TrackedFileLister struct {
	executor         GitExecutor
	workingDirectory string
}

// NewTrackedFileLister constructs a lister running git in workingDirectory; an empty value uses the process working directory.
func NewTrackedFileLister(executor GitExecutor, workingDirectory string) (*TrackedFileLister, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &TrackedFileLister{executor: executor, workingDirectory: workingDirectory}, nil
}

// ListTrackedFiles returns tracked paths relative to the repository root in git's order.
// Any standard error output is fatal even when git exits zero.
func (lister *TrackedFileLister) ListTrackedFiles(executionContext context.Context) ([]string, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        trackedFilesArguments(),
		WorkingDirectory: lister.workingDirectory,
	}

	executionResult, executionError := lister.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		var failedError execshell.CommandFailedError
		if errors.As(executionError, &failedError) {
			return nil, ListingError{Diagnostic: failedError.Result.StandardError, Cause: executionError}
		}
		return nil, ListingError{Cause: executionError}
	}

	if len(executionResult.StandardError) > 0 {
		return nil, ListingError{Diagnostic: executionResult.StandardError}
	}

	return parseTrackedPaths(executionResult.StandardOutput), nil
}

func trackedFilesArguments() []string {
	return []string{
		gitLSTreeSubcommandConstant,
		gitRecursiveFlagConstant,
		gitHeadReferenceConstant,
		gitNameOnlyFlagConstant,
	}
}

func parseTrackedPaths(standardOutput string) []string {
	rawPaths := strings.Split(standardOutput, trackedPathSeparatorConstant)
	trackedPaths := make([]string, 0, len(rawPaths))
	for _, rawPath := range rawPaths {
		if len(rawPath) == 0 {
			continue
		}
		trackedPaths = append(trackedPaths, rawPath)
	}
	return trackedPaths
}
