package emitter

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/simonhull/firebird-suite/quill/output"
)

// FileType selects how a generated file is assembled.
type FileType int

const (
	// Generic files get the header and content only.
	Generic FileType = iota
	// TypeScript files additionally start with a lint-disable directive.
	TypeScript
)

// MaxLineLength is always appended to the disable directive.
const MaxLineLength = "max-line-length"

// FileMode is the permission used for emitted files.
const FileMode os.FileMode = 0644

// ParseFileType maps a CLI/config name to a FileType.
func ParseFileType(name string) (FileType, error) {
	switch strings.ToLower(name) {
	case "", "generic":
		return Generic, nil
	case "typescript", "ts":
		return TypeScript, nil
	default:
		return Generic, fmt.Errorf("unknown file type %q (want generic or typescript)", name)
	}
}

func (t FileType) String() string {
	if t == TypeScript {
		return "typescript"
	}
	return "generic"
}

// DisableDirective builds the directive line listing flags followed by
// MaxLineLength.
func DisableDirective(flags []string) string {
	all := make([]string, 0, len(flags)+1)
	all = append(all, flags...)
	all = append(all, MaxLineLength)
	return "/* tslint:disable:" + strings.Join(all, " ") + " */"
}

// File describes one file to emit.
type File struct {
	Path         string
	Content      string
	Header       string
	Type         FileType
	DisableFlags []string
}

// Render assembles the final file text.
func (f File) Render() string {
	sections := make([]string, 0, 3)
	if f.Type == TypeScript {
		sections = append(sections, DisableDirective(f.DisableFlags))
	}
	sections = append(sections, f.Header, f.Content)
	return strings.Join(sections, "\n")
}

// Emitter writes files to a filesystem.
type Emitter struct {
	fs afero.Fs
}

// New returns an Emitter backed by fs.
func New(fs afero.Fs) *Emitter {
	return &Emitter{fs: fs}
}

// NewOS returns an Emitter backed by the operating system filesystem.
func NewOS() *Emitter {
	return New(afero.NewOsFs())
}

// Write renders f and writes it, replacing any existing content. On
// success "<path> generated" is printed in green.
func (e *Emitter) Write(f File) error {
	if err := afero.WriteFile(e.fs, f.Path, []byte(f.Render()), FileMode); err != nil {
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	output.Out(f.Path+" generated", output.Green)
	return nil
}

// WriteFile is Write with the file described by its parts.
func (e *Emitter) WriteFile(path, content, header string, fileType FileType, disableFlags []string) error {
	return e.Write(File{
		Path:         path,
		Content:      content,
		Header:       header,
		Type:         fileType,
		DisableFlags: disableFlags,
	})
}

// Options configures Execute.
type Options struct {
	DryRun bool
}

// Execute writes files in order, stopping at the first failure. With
// DryRun nothing is written and each file is reported instead.
func (e *Emitter) Execute(ctx context.Context, files []File, opts Options) error {
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if opts.DryRun {
			output.Step(fmt.Sprintf("✓ [DRY RUN] Write %s (%d bytes)", f.Path, len(f.Render())))
			continue
		}
		if err := e.Write(f); err != nil {
			return err
		}
	}
	return nil
}

var defaultEmitter = NewOS()

// WriteFile writes a generated file to the OS filesystem.
func WriteFile(path, content, header string, fileType FileType, disableFlags []string) error {
	return defaultEmitter.WriteFile(path, content, header, fileType, disableFlags)
}
