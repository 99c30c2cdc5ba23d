package textfmt

import "strings"

// MakeComment wraps text in a doc comment.
//
//   - "" yields ""
//   - a single line yields "/** line */\n"
//   - several lines yield a block with " * " prefixes, where empty lines
//     become a bare " *"
func MakeComment(text string) string {
	return MakeCommentLines(strings.Split(text, "\n"))
}

// MakeCommentLines is MakeComment for text already split into lines.
// Lines containing newlines are split further.
func MakeCommentLines(lines []string) string {
	lines = strings.Split(strings.Join(lines, "\n"), "\n")

	if len(lines) == 1 {
		if lines[0] == "" {
			return ""
		}
		return "/** " + lines[0] + " */\n"
	}

	var b strings.Builder
	b.WriteString("/**\n")
	for _, line := range lines {
		if line == "" {
			b.WriteString(" *\n")
			continue
		}
		b.WriteString(" * ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(" */\n")
	return b.String()
}
