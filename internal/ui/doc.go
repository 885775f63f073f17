// Package ui provides semantic text formatting for CLI output.
//
// Formatters render differently depending on terminal capabilities. When
// colors are available, content is colorized. When NO_COLOR is set or the
// terminal doesn't support colors, text-based decorations (backticks,
// quotes) are used instead.
//
// # Semantic Formatters
//
// Use the appropriate formatter for the content type:
//
//	ui.Code.Sprint("scout secrets generate")  // Commands and code
//	ui.Path.Sprint("secrets/db_password")     // File paths
//	ui.Success.Sprint("✓")                     // Success indicators
//	ui.Error.Sprint("✗")                       // Error indicators
//	ui.Info.Sprint("→")                        // Informational hints
//	ui.Highlight.Sprint("grafana_password")   // Emphasized values
//
// # Color Behavior
//
// Colors are disabled when:
//   - NO_COLOR environment variable is set (any value)
//   - Terminal doesn't support colors (TERM=dumb, not a TTY)
package ui
