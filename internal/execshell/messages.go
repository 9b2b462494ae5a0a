package execshell

import (
	"fmt"
	"strings"
)

const (
	standardErrorSuffixTemplateConstant  = ": %s"
	unknownFailureMessageConstant        = "unknown error"
	emptyStringConstant                  = ""
	defaultWorkingDirectoryLabelConstant = "current directory"
	gitHeadReferenceConstant             = "HEAD"
	outputLineSeparatorConstant          = "\n"
)

const (
	trackedFilesStartTemplateConstant            = "Listing files tracked at %s in %s"
	trackedFilesSuccessTemplateConstant          = "Listed %d files tracked at %s in %s"
	trackedFilesFailureTemplateConstant          = "Failed to list files tracked at %s in %s (exit code %d%s)"
	trackedFilesExecutionFailureTemplateConstant = "Unable to list files tracked at %s in %s: %s"
)

// CommandMessageFormatter builds human-readable messages for the lifecycle of a tracked file listing.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a listing about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return fmt.Sprintf(trackedFilesStartTemplateConstant, formatter.extractTreeish(command.Details.Arguments), formatter.describeWorkingDirectory(command))
}

// BuildCompletedMessage formats the message describing a finished listing, counting the listed files on success.
func (formatter CommandMessageFormatter) BuildCompletedMessage(command ShellCommand, result ExecutionResult) string {
	if result.ExitCode != 0 {
		return formatter.BuildFailureMessage(command, result)
	}
	return fmt.Sprintf(trackedFilesSuccessTemplateConstant, countOutputLines(result.StandardOutput), formatter.extractTreeish(command.Details.Arguments), formatter.describeWorkingDirectory(command))
}

// BuildFailureMessage formats the message describing a listing that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return fmt.Sprintf(
		trackedFilesFailureTemplateConstant,
		formatter.extractTreeish(command.Details.Arguments),
		formatter.describeWorkingDirectory(command),
		result.ExitCode,
		formatter.formatStandardErrorSuffix(result.StandardError),
	)
}

// BuildExecutionFailureMessage formats the message describing a listing that could not be started.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return fmt.Sprintf(trackedFilesExecutionFailureTemplateConstant, formatter.extractTreeish(command.Details.Arguments), formatter.describeWorkingDirectory(command), formatter.describeFailure(failure))
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

// extractTreeish returns the first argument after the subcommand that is not a flag.
func (formatter CommandMessageFormatter) extractTreeish(arguments []string) string {
	for argumentIndex := 1; argumentIndex < len(arguments); argumentIndex++ {
		trimmedArgument := strings.TrimSpace(arguments[argumentIndex])
		if len(trimmedArgument) == 0 || strings.HasPrefix(trimmedArgument, "-") {
			continue
		}
		return trimmedArgument
	}
	return gitHeadReferenceConstant
}

func countOutputLines(output string) int {
	lineCount := 0
	for _, line := range strings.Split(output, outputLineSeparatorConstant) {
		if len(line) > 0 {
			lineCount++
		}
	}
	return lineCount
}
