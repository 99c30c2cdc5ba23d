// Package output provides styled terminal output for Quill and the
// generators built on it.
//
// # Usage
//
// Plain lines, optionally wrapped in an ANSI color:
//
//	output.Out("models/user.ts generated", output.Green)
//	output.OutLines([]string{"line one", "line two"}, output.None)
//
// Status helpers shared with the rest of the Firebird Suite:
//
//	output.Success("Created directory: generated/api")
//	output.Info("Next steps:")
//	output.Step("quill write ...")
//	output.Error("Something went wrong")
//
// # Colors
//
// Colors are a fixed set of named values, each mapped to one SGR escape
// sequence. Color wrapping can be switched off with SetColor(false), which
// the CLI does for --no-color and when stdout is not a terminal.
//
// All output goes to os.Stdout unless redirected with SetWriter; the CLI
// points it at the command's output stream.
//
// # Verbose Mode
//
//	output.SetVerbose(true)
//	output.Verbose("Creating segment: generated/api")
package output
