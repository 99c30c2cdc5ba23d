package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode  bool
	colorEnabled = true
	writer       io.Writer
)

// SetWriter redirects all output to w. A nil w restores os.Stdout.
func SetWriter(w io.Writer) {
	writer = w
}

func out() io.Writer {
	if writer != nil {
		return writer
	}
	return os.Stdout
}

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetColor enables or disables ANSI color wrapping in Out and OutLines.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

// Out prints text followed by a newline. When color is not None (and
// color output is enabled) the text is wrapped in the color's start code
// and Reset.
//
// Example:
//
//	output.Out("api/client.ts generated", output.Green)
func Out(text string, color Color) {
	if code := color.Code(); code != "" && colorEnabled {
		text = code + text + Reset
	}
	fmt.Fprintln(out(), text)
}

// OutLines joins lines with newlines and prints them with Out.
func OutLines(lines []string, color Color) {
	Out(strings.Join(lines, "\n"), color)
}

// Success prints a success message with 🔥 emoji and green color.
//
// Example:
//
//	output.Success("Created directory: generated/api")
func Success(msg string) {
	fmt.Fprintln(out(), successStyle.Render("🔥 " + msg))
}

// Error prints an error message with ❌ emoji and red color.
func Error(msg string) {
	fmt.Fprintln(out(), errorStyle.Render("❌ " + msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
func Info(msg string) {
	fmt.Fprintln(out(), infoStyle.Render("ℹ️  " + msg))
}

// Step prints an indented step message in gray.
func Step(msg string) {
	fmt.Fprintln(out(), stepStyle.Render("   " + msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(out(), stepStyle.Render("🔍 " + msg))
	}
}
