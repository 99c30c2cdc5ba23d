package output

// Color names one of the fixed terminal colors understood by Out.
type Color int

const (
	None Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	Gray
)

// Reset is the escape sequence that ends any colored run.
const Reset = "\x1b[0m"

var colorCodes = map[Color]string{
	Red:     "\x1b[31m",
	Green:   "\x1b[32m",
	Yellow:  "\x1b[33m",
	Blue:    "\x1b[34m",
	Magenta: "\x1b[35m",
	Cyan:    "\x1b[36m",
	Gray:    "\x1b[90m",
}

var colorNames = map[Color]string{
	None:    "none",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	Gray:    "gray",
}

// Code returns the start escape sequence for c, or "" for None and
// unknown values.
func (c Color) Code() string {
	return colorCodes[c]
}

// String returns the lowercase color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}
