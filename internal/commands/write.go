package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/quill/emitter"
	"github.com/simonhull/firebird-suite/quill/fsutil"
	"github.com/simonhull/firebird-suite/quill/output"
	"github.com/simonhull/firebird-suite/quill/textfmt"
)

func writeCmd(s *settings) *cobra.Command {
	var (
		descriptorPath string
		fileType       string
		disable        []string
		inputPath      string
		omitVersion    bool
		mkdir          bool
		dryRun         bool
	)

	cmd := &cobra.Command{
		Use:   "write <file>",
		Short: "Write a generated file with header banner and lint directive",
		Long: `Write content (from --input or stdin) to <file>.

Relative paths are resolved against the configured output directory.
Typed-source outputs (--type typescript) start with a lint-disable
directive listing the config's lint.disable flags, any --disable flags,
and max-line-length.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ft, err := emitter.ParseFileType(fileType)
			if err != nil {
				return err
			}

			target := args[0]
			if !filepath.IsAbs(target) {
				target = filepath.Join(s.cfg.OutputDir, target)
			}

			var content string
			if inputPath != "" {
				data, err := os.ReadFile(inputPath)
				if err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				content = string(data)
			} else {
				content, err = readStdin(cmd)
				if err != nil {
					return err
				}
			}

			var header string
			if descriptorPath != "" {
				d, err := textfmt.LoadDescriptor(descriptorPath)
				if err != nil {
					return err
				}
				header = s.cfg.Formatter().ProcessHeader(d, omitVersion)
			}

			if mkdir && !dryRun {
				output.Verbose("Creating directory: " + filepath.Dir(target))
				if err := fsutil.CreateDir(filepath.Dir(target)); err != nil {
					return err
				}
			}

			flags := append(append([]string{}, s.cfg.DisableFlags...), disable...)
			file := emitter.File{
				Path:         target,
				Content:      content,
				Header:       header,
				Type:         ft,
				DisableFlags: flags,
			}

			if dryRun {
				output.Info("Dry run: nothing will be written")
			}
			return emitter.NewOS().Execute(cmd.Context(), []emitter.File{file}, emitter.Options{
				DryRun: dryRun,
			})
		},
	}

	cmd.Flags().StringVarP(&descriptorPath, "descriptor", "d", "", "API descriptor (YAML or JSON) used for the header banner")
	cmd.Flags().StringVarP(&fileType, "type", "t", "generic", "Output type: generic or typescript")
	cmd.Flags().StringSliceVar(&disable, "disable", nil, "Additional lint flags to disable")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read content from this file instead of stdin")
	cmd.Flags().BoolVar(&omitVersion, "omit-version", false, "Leave info.version out of the banner")
	cmd.Flags().BoolVarP(&mkdir, "mkdir", "p", true, "Create the target's directory first")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without writing")

	return cmd
}
