// Package ui renders internal events as concise human-readable console messages
// while structured telemetry keeps flowing through the diagnostic logger.
package ui
