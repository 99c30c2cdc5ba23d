package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/quill/fsutil"
	"github.com/simonhull/firebird-suite/quill/output"
)

func mkdirCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a directory and any missing parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			output.Verbose("Creating directory: " + path)
			if err := fsutil.CreateDir(path); err != nil {
				return err
			}
			output.Success("Created directory: " + path)
			return nil
		},
	}
}

func cleanCmd(s *settings) *cobra.Command {
	var removeSelf bool

	cmd := &cobra.Command{
		Use:   "clean [path]",
		Short: "Empty a directory (defaults to the configured output dir)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := s.cfg.OutputDir
			if len(args) == 1 {
				path = args[0]
			}

			output.Verbose(fmt.Sprintf("Emptying %s (remove=%t)", path, removeSelf))
			if err := fsutil.EmptyDir(path, removeSelf); err != nil {
				return err
			}

			if removeSelf {
				output.Success("Removed directory: " + path)
			} else {
				output.Success("Emptied directory: " + path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&removeSelf, "remove", false, "Remove the directory itself as well")
	return cmd
}
