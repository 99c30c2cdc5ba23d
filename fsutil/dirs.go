package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/afero"
)

// DirPerm is the mode used for every directory CreateDir makes.
const DirPerm os.FileMode = 0755

// ErrParentMissing is returned by CreateDir when a segment cannot be made
// because its parent vanished or was never created.
var ErrParentMissing = errors.New("parent directory missing")

// Dirs performs directory operations against a filesystem.
type Dirs struct {
	fs afero.Fs
}

// New returns Dirs backed by fs.
func New(fs afero.Fs) *Dirs {
	return &Dirs{fs: fs}
}

// NewOS returns Dirs backed by the operating system filesystem.
func NewOS() *Dirs {
	return New(afero.NewOsFs())
}

// IsDirectory reports whether path exists and is a directory.
// A missing path yields false with no error; any other stat failure is
// returned.
func (d *Dirs) IsDirectory(path string) (bool, error) {
	info, err := d.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.IsDir(), nil
}

// CreateDir creates path and every missing parent, one segment at a time.
// Calling it on an existing directory is a no-op.
func (d *Dirs) CreateDir(path string) error {
	isDir, err := d.IsDirectory(path)
	if err != nil {
		return err
	}
	if isDir {
		return nil
	}

	segs := segments(path)
	for i, seg := range segs {
		err := d.fs.Mkdir(seg, DirPerm)
		if err == nil || errors.Is(err, fs.ErrExist) {
			continue
		}

		final := i == len(segs)-1
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("create %s: %w: %s", seg, ErrParentMissing, filepath.Dir(seg))
		case tolerable(err):
			if final {
				return fmt.Errorf("create %s: %w", seg, err)
			}
		default:
			return fmt.Errorf("create %s: %w", seg, err)
		}
	}

	isDir, err = d.IsDirectory(path)
	if err != nil {
		return err
	}
	if !isDir {
		return fmt.Errorf("create %s: path exists and is not a directory", path)
	}
	return nil
}

// EmptyDir deletes everything below path. With removeSelf, path itself is
// removed as well. A missing path is not an error.
func (d *Dirs) EmptyDir(path string, removeSelf bool) error {
	if _, err := d.fs.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if removeSelf {
			return nil
		}
		// RemoveAll on a missing path is a no-op.
		return d.removeAll(path)
	}

	// Depth-first worklist. Subdirectories are recorded in discovery order
	// and removed in reverse so children go before their parents.
	pending := []string{path}
	var subdirs []string
	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := afero.ReadDir(d.fs, dir)
		if err != nil {
			return fmt.Errorf("read %s: %w", dir, err)
		}

		for _, entry := range entries {
			child := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				pending = append(pending, child)
				subdirs = append(subdirs, child)
				continue
			}
			if err := d.fs.Remove(child); err != nil {
				return fmt.Errorf("remove %s: %w", child, err)
			}
		}
	}

	for i := len(subdirs) - 1; i >= 0; i-- {
		if err := d.fs.Remove(subdirs[i]); err != nil {
			return fmt.Errorf("remove %s: %w", subdirs[i], err)
		}
	}

	if removeSelf {
		return d.removeAll(path)
	}
	return nil
}

func (d *Dirs) removeAll(path string) error {
	if err := d.fs.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// tolerable reports whether a mkdir failure may be skipped on an
// intermediate segment. fs.ErrPermission matches both EACCES and EPERM.
func tolerable(err error) bool {
	return errors.Is(err, fs.ErrPermission) || errors.Is(err, syscall.EISDIR)
}

// segments expands path into its cumulative prefixes, left to right:
// "a/b/c" becomes ["a", "a/b", "a/b/c"].
func segments(path string) []string {
	clean := filepath.Clean(path)
	vol := filepath.VolumeName(clean)
	rest := clean[len(vol):]
	sep := string(filepath.Separator)

	base := vol
	if strings.HasPrefix(rest, sep) {
		base += sep
	}

	var out []string
	for _, part := range strings.Split(rest, sep) {
		if part == "" {
			continue
		}
		if base == "" || strings.HasSuffix(base, sep) {
			base += part
		} else {
			base += sep + part
		}
		out = append(out, base)
	}
	return out
}

var defaultDirs = NewOS()

// IsDirectory reports whether path is a directory on the OS filesystem.
func IsDirectory(path string) (bool, error) {
	return defaultDirs.IsDirectory(path)
}

// CreateDir creates path on the OS filesystem.
func CreateDir(path string) error {
	return defaultDirs.CreateDir(path)
}

// EmptyDir empties (or, with removeSelf, removes) path on the OS filesystem.
func EmptyDir(path string, removeSelf bool) error {
	return defaultDirs.EmptyDir(path, removeSelf)
}
