package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/simonhull/firebird-suite/quill"
	"github.com/simonhull/firebird-suite/quill/config"
	"github.com/simonhull/firebird-suite/quill/output"
)

// settings holds the resolved persistent flags and config for a run.
type settings struct {
	verbose    bool
	noColor    bool
	configPath string
	cfg        *config.Config
}

// RootCmd creates and returns the root command for the Quill CLI
func RootCmd() *cobra.Command {
	s := &settings{}

	cmd := &cobra.Command{
		Use:   "quill",
		Short: "Filesystem and text helpers for code generators",
		Long: `Quill prepares output directories and formats generated source:
• Create and clean output trees
• Indent text and wrap it in comment blocks
• Build header banners from API descriptors
• Write generated files with lint directives`,
		Version:       quill.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			output.SetWriter(cmd.OutOrStdout())
			output.SetVerbose(s.verbose)

			cfg, err := config.Load(".", s.configPath)
			if err != nil {
				return err
			}
			s.cfg = cfg

			output.SetColor(cfg.Color && !s.noColor && term.IsTerminal(int(os.Stdout.Fd())))
			output.Verbose("Indentation unit: " + strconv.Itoa(cfg.Indentation))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().BoolVar(&s.noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().StringVar(&s.configPath, "config", "", "Path to config file (default ./quill.yml)")

	cmd.AddCommand(
		mkdirCmd(s),
		cleanCmd(s),
		commentCmd(s),
		indentCmd(s),
		headerCmd(s),
		writeCmd(s),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "Quill v%s\n", quill.Version)
			},
		},
	)

	return cmd
}

// Execute runs the CLI and prints any error.
func Execute() error {
	err := RootCmd().Execute()
	if err != nil {
		output.Error(err.Error())
	}
	return err
}
