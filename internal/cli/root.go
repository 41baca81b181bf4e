// Package cli wires the conformance harness into a cobra command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/bangfs/conformance/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the bangfs-conform CLI.
// cfg provides flag defaults, so the precedence is built-in defaults,
// then CONFIG_PATH file, then environment, then flags.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bangfs-conform",
		Short: "Black-box conformance harness for BangFS",
		Long: `bangfs-conform exercises a live BangFS mount through ordinary shell
commands and judges the results against declared expectations, with
trace-log correlation and full mount lifecycle management.`,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewRunCommand(opts, cfg))
	cmd.AddCommand(NewPhasesCommand(opts))

	return cmd
}
