// Package fsutil prepares output directories for generators.
//
// # Overview
//
// Generators need an output tree that exists and, often, one that starts
// empty. This package provides:
//   - IsDirectory: a stat probe that separates "missing" from real failures
//   - CreateDir: segment-by-segment creation tolerant of partially existing paths
//   - EmptyDir: clear a directory's contents, optionally removing the directory
//
// # Usage
//
// Package-level functions work on the OS filesystem:
//
//	if err := fsutil.CreateDir("generated/api/models"); err != nil {
//	    return err
//	}
//	if err := fsutil.EmptyDir("generated/api", false); err != nil {
//	    return err
//	}
//
// Dirs wraps any afero.Fs, which lets tests run against an in-memory tree:
//
//	dirs := fsutil.New(afero.NewMemMapFs())
//	err := dirs.CreateDir("/out/a/b/c")
//
// # Errors
//
// A missing path is never an error for IsDirectory or EmptyDir, and an
// existing directory is never an error for CreateDir. Permission denied,
// operation not permitted and is-a-directory failures are tolerated on
// intermediate segments during CreateDir but returned for the final one.
// Everything else is returned to the caller wrapped with the path involved.
package fsutil
