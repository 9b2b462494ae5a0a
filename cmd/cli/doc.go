// Package cli constructs the trailspace command-line interface, wiring the
// Cobra command hierarchy, configuration loader, and structured logging
// around the trailing whitespace check.
package cli
