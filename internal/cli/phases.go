package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bangfs/conformance/internal/harness"
)

// PhasesOptions holds flags for the phases command.
type PhasesOptions struct {
	*RootOptions
	SuiteDir string
}

// NewPhasesCommand creates the phases command, which lists the phases
// a run would execute. Useful for picking --phase filter terms.
func NewPhasesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PhasesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "phases",
		Short: "List test phases and case counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			phases := harness.BuiltinPhases()
			if opts.SuiteDir != "" {
				extra, err := harness.LoadSuiteDir(opts.SuiteDir)
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to load suite", err)
				}
				phases = append(phases, extra...)
			}

			for _, p := range phases {
				fmt.Fprintf(cmd.OutOrStdout(), "%-60s %3d cases\n", p.Name, len(p.Cases))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.SuiteDir, "suite", "", "directory of extra suite YAML files to include")

	return cmd
}
