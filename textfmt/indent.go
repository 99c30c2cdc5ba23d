package textfmt

import "strings"

// DefaultIndentation is the indentation unit used when none is configured.
const DefaultIndentation = 2

// Formatter applies text transformations that depend on the configured
// indentation unit.
type Formatter struct {
	Indentation int // spaces per indentation level
}

// New returns a Formatter with the given indentation unit. Negative
// values are treated as zero.
func New(indentation int) *Formatter {
	if indentation < 0 {
		indentation = 0
	}
	return &Formatter{Indentation: indentation}
}

// Indent prefixes every line of text with level indentation units.
// Lines that are whitespace-only after prefixing become empty.
//
// Example (unit 2):
//
//	f.Indent("a\nb", 1) // "  a\n  b"
func (f *Formatter) Indent(text string, level int) string {
	prefix := f.prefix(level)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = prefix + line
		if strings.TrimSpace(line) == "" {
			line = ""
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// IndentLines joins lines with newlines and indents the result.
func (f *Formatter) IndentLines(lines []string, level int) string {
	return f.Indent(strings.Join(lines, "\n"), level)
}

func (f *Formatter) prefix(level int) string {
	if level <= 0 || f.Indentation <= 0 {
		return ""
	}
	return strings.Repeat(" ", level*f.Indentation)
}
