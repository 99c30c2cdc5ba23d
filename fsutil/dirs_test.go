package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faultFs injects errors for specific paths on top of a real afero.Fs.
type faultFs struct {
	afero.Fs
	statErr  map[string]error
	mkdirErr map[string]error
}

func newFaultFs() *faultFs {
	return &faultFs{
		Fs:       afero.NewMemMapFs(),
		statErr:  map[string]error{},
		mkdirErr: map[string]error{},
	}
}

func (f *faultFs) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErr[name]; ok {
		return nil, &os.PathError{Op: "stat", Path: name, Err: err}
	}
	return f.Fs.Stat(name)
}

func (f *faultFs) Mkdir(name string, perm os.FileMode) error {
	if err, ok := f.mkdirErr[name]; ok {
		return &os.PathError{Op: "mkdir", Path: name, Err: err}
	}
	return f.Fs.Mkdir(name, perm)
}

func TestIsDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing directory", path: tmpDir, want: true},
		{name: "regular file", path: file, want: false},
		{name: "missing path", path: filepath.Join(tmpDir, "nope", "deeper"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsDirectory(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDirectory_StatFailure(t *testing.T) {
	ffs := newFaultFs()
	ffs.statErr["/locked"] = syscall.EACCES

	got, err := New(ffs).IsDirectory("/locked")
	require.Error(t, err)
	assert.False(t, got)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestCreateDir_Nested(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "a", "b", "c")

	require.NoError(t, CreateDir(target))

	for _, p := range []string{"a", "a/b", "a/b/c"} {
		info, err := os.Stat(filepath.Join(root, p))
		require.NoError(t, err)
		assert.True(t, info.IsDir(), "%s should be a directory", p)
	}

	// Second call is a no-op
	require.NoError(t, CreateDir(target))
}

func TestCreateDir_PartiallyExisting(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0755))

	target := filepath.Join(root, "a", "b", "c", "d")
	require.NoError(t, CreateDir(target))

	ok, err := IsDirectory(target)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreateDir_RelativePath(t *testing.T) {
	dirs := New(afero.NewMemMapFs())

	require.NoError(t, dirs.CreateDir("out/api/models"))

	ok, err := dirs.IsDirectory("out/api/models")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreateDir_FileInTheWay(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "a")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := CreateDir(filepath.Join(root, "a", "b"))
	assert.Error(t, err)

	err = CreateDir(blocker)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestCreateDir_IntermediateErrorsTolerated(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "permission denied", err: syscall.EACCES},
		{name: "operation not permitted", err: syscall.EPERM},
		{name: "is a directory", err: syscall.EISDIR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ffs := newFaultFs()
			require.NoError(t, ffs.Fs.MkdirAll("/out/a", 0755))
			ffs.mkdirErr["/out/a"] = tt.err

			dirs := New(ffs)
			require.NoError(t, dirs.CreateDir("/out/a/b"))

			ok, err := dirs.IsDirectory("/out/a/b")
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestCreateDir_FinalSegmentErrorReturned(t *testing.T) {
	for _, code := range []error{syscall.EACCES, syscall.EPERM, syscall.EISDIR} {
		ffs := newFaultFs()
		ffs.mkdirErr["/out/a/b"] = code

		err := New(ffs).CreateDir("/out/a/b")
		require.Error(t, err)
		assert.ErrorIs(t, err, code)
		assert.Contains(t, err.Error(), "/out/a/b")
	}
}

func TestCreateDir_ParentMissing(t *testing.T) {
	ffs := newFaultFs()
	ffs.mkdirErr["/out/a"] = syscall.ENOENT

	err := New(ffs).CreateDir("/out/a/b")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParentMissing)
	assert.Contains(t, err.Error(), "/out")
}

func TestCreateDir_OtherErrorsPropagate(t *testing.T) {
	ffs := newFaultFs()
	ffs.mkdirErr["/out"] = syscall.EIO

	err := New(ffs).CreateDir("/out/a/b")
	require.Error(t, err)
	assert.ErrorIs(t, err, syscall.EIO)

	_, statErr := ffs.Fs.Stat("/out/a")
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestCreateDir_StatFailure(t *testing.T) {
	ffs := newFaultFs()
	ffs.statErr["/out"] = syscall.EACCES

	err := New(ffs).CreateDir("/out")
	assert.ErrorIs(t, err, fs.ErrPermission)
}

// buildTree creates dir/file.txt and dir/sub/nested.txt
func buildTree(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "nested.txt"), []byte("b"), 0644))
}

func TestEmptyDir_KeepSelf(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	buildTree(t, dir)

	require.NoError(t, EmptyDir(dir, false))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEmptyDir_RemoveSelf(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	buildTree(t, dir)

	require.NoError(t, EmptyDir(dir, true))

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestEmptyDir_MissingPath(t *testing.T) {
	assert.NoError(t, EmptyDir("/does/not/exist", false))
	assert.NoError(t, EmptyDir("/does/not/exist", true))
}

func TestEmptyDir_DeepTree(t *testing.T) {
	memFs := afero.NewMemMapFs()
	dirs := New(memFs)

	deep := "/out/a/b/c/d/e"
	require.NoError(t, dirs.CreateDir(deep))
	require.NoError(t, afero.WriteFile(memFs, "/out/a/b/c/d/e/leaf.go", []byte("package e"), 0644))
	require.NoError(t, afero.WriteFile(memFs, "/out/a/top.go", []byte("package a"), 0644))
	require.NoError(t, afero.WriteFile(memFs, "/out/root.go", []byte("package out"), 0644))

	require.NoError(t, dirs.EmptyDir("/out", false))

	entries, err := afero.ReadDir(memFs, "/out")
	require.NoError(t, err)
	assert.Empty(t, entries)

	exists, err := afero.Exists(memFs, "/out/a/b")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEmptyDir_StatFailure(t *testing.T) {
	ffs := newFaultFs()
	ffs.statErr["/out"] = syscall.EACCES

	err := New(ffs).EmptyDir("/out", false)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestSegments(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{path: "a/b/c", want: []string{"a", "a/b", "a/b/c"}},
		{path: "/x/y", want: []string{"/x", "/x/y"}},
		{path: "a//b/", want: []string{"a", "a/b"}},
		{path: "../a", want: []string{"..", "../a"}},
		{path: ".", want: []string{"."}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := segments(filepath.FromSlash(tt.path))
			want := make([]string, len(tt.want))
			for i, w := range tt.want {
				want[i] = filepath.FromSlash(w)
			}
			assert.Equal(t, want, got)
		})
	}
}
