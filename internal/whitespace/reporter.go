package whitespace

import (
	"fmt"
	"io"

	"github.com/temirov/trailspace/internal/utils"
)

const (
	violationDiagnosticTemplateConstant   = "Found trailing whitespaces: %s:%d\n"
	operationalDiagnosticTemplateConstant = "%s\n"
)

// WriterReporter prints diagnostics to a writer, one line per call.
type WriterReporter struct {
	writer io.Writer
}

// NewWriterReporter wraps writer so concurrent diagnostics never interleave.
func NewWriterReporter(writer io.Writer) *WriterReporter {
	return &WriterReporter{writer: utils.NewFlushingWriter(writer)}
}

// ReportViolation prints the path and line number of an offending file.
func (reporter *WriterReporter) ReportViolation(result ScanResult) {
	fmt.Fprintf(reporter.writer, violationDiagnosticTemplateConstant, result.Path, result.LineNumber)
}

// ReportOperationalFailure prints the message for a failure that aborted the run.
func (reporter *WriterReporter) ReportOperationalFailure(failure OperationalError) {
	fmt.Fprintf(reporter.writer, operationalDiagnosticTemplateConstant, failure.Error())
}
