// Package logging builds the slog loggers used across the CLI.
//
// Console output uses a compact single-line handler; JSON output reuses the
// standard library handler. Loggers built from config write to the data
// directory's log file so the terminal stays free for command output.
package logging
