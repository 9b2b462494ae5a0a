// Package whitespace detects trailing horizontal whitespace in the files
// tracked by the repository in the working directory.
//
// Service lists tracked files through git, drops ignored binary extensions,
// scans the remaining files concurrently with ContentScanner, reports the
// first offending line of each file, and converts the outcome into an
// error carrying the process exit status. CommandBuilder wires the Cobra
// command and its default collaborators.
package whitespace
