// Package quill holds build metadata for the Quill CLI. The helpers live
// in the fsutil, textfmt, emitter and output packages.
package quill

// Version is the current Quill release.
const Version = "0.1.0"
