// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "2.0.0"

// Milestones:
// 2.0.0 - Terminal keypad UI, headless replay, JSON export
// 1.0.0 - Law of Cosines reduction with degree/minute entry
