package whitespace

import "fmt"

// Process exit codes forming the contract with CI jobs and hooks.
const (
	ExitCodeSuccess            = 0
	ExitCodePolicyViolation    = 1
	ExitCodeOperationalFailure = 2
)

const (
	operationalFailureTemplateConstant = "Unexpected error occurred: %v"
	policyViolationTemplateConstant    = "trailing whitespace found in %d file(s)"
)

// ExitStatusError is an error that has already been reported to the user and only determines the exit code.
type ExitStatusError interface {
	error
	ExitCode() int
}

// OperationalError reports that the environment or tooling failed before scanning started.
type OperationalError struct {
	Cause error
}

// Error formats the message printed for operational failures.
func (operationalError OperationalError) Error() string {
	return fmt.Sprintf(operationalFailureTemplateConstant, operationalError.Cause)
}

// Unwrap exposes the underlying failure.
func (operationalError OperationalError) Unwrap() error {
	return operationalError.Cause
}

// ExitCode returns ExitCodeOperationalFailure.
func (OperationalError) ExitCode() int {
	return ExitCodeOperationalFailure
}

// PolicyViolationError reports that at least one tracked file ends a line in whitespace.
type PolicyViolationError struct {
	OffendingFiles int
}

// Error summarizes the number of offending files.
func (violationError PolicyViolationError) Error() string {
	return fmt.Sprintf(policyViolationTemplateConstant, violationError.OffendingFiles)
}

// ExitCode returns ExitCodePolicyViolation.
func (PolicyViolationError) ExitCode() int {
	return ExitCodePolicyViolation
}
