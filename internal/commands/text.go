package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/quill/textfmt"
)

// readInput returns args joined by spaces, or all of stdin when no args
// are given. A single trailing newline from stdin is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := readStdin(cmd)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(data, "\n"), nil
}

// readStdin returns stdin unchanged.
func readStdin(cmd *cobra.Command) (string, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func commentCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "comment [text]",
		Short: "Wrap text (or stdin) in a doc comment",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), textfmt.MakeComment(text))
			return nil
		},
	}
}

func indentCmd(s *settings) *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "indent [text]",
		Short: "Indent text (or stdin) by the configured unit",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.cfg.Formatter().Indent(text, level))
			return nil
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 1, "Indentation level")
	return cmd
}

func headerCmd(s *settings) *cobra.Command {
	var omitVersion bool

	cmd := &cobra.Command{
		Use:   "header <descriptor>",
		Short: "Print the header banner for an API descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := textfmt.LoadDescriptor(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s.cfg.Formatter().ProcessHeader(d, omitVersion))
			return nil
		},
	}

	cmd.Flags().BoolVar(&omitVersion, "omit-version", false, "Leave info.version out of the banner")
	return cmd
}
