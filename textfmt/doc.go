// Package textfmt formats generated source text: indentation, comment
// blocks, and header banners built from an API descriptor.
//
// # Indentation
//
// The indentation unit (spaces per level) comes from configuration and
// is carried by a Formatter rather than global state:
//
//	f := textfmt.New(cfg.Indentation)
//	body := f.Indent("a: string;\nb: number;", 1)
//
// Lines that end up whitespace-only are emitted empty, never padded.
//
// # Comments
//
//	textfmt.MakeComment("User model")        // "/** User model */\n"
//	textfmt.MakeComment("Line one\n\nLine two")
//	// /**
//	//  * Line one
//	//  *
//	//  * Line two
//	//  */
//
// # Headers
//
// ProcessHeader turns a descriptor's info block and host/basePath into a
// comment banner listing only the values:
//
//	d, err := textfmt.LoadDescriptor("api.yml")
//	banner := f.ProcessHeader(d, true) // true drops info.version
//
// All functions return new strings and never modify their input.
package textfmt
