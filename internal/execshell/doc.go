// Package execshell provides structured helpers for invoking external tools.
//
// ShellExecutor wraps a CommandRunner with zap logging and lifecycle
// notifications, and OSCommandRunner runs processes through os/exec. The
// scanner uses it to run git in a testable manner.
package execshell
