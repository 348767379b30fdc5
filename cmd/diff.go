package cmd

import (
	"github.com/spf13/cobra"

	"binres.dev/pkg/binres/internal/domain"
)

var diffExitCodeFlag bool

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how a run would change the generated sources",
		Long: `Render the generated sources in memory and print a unified diff against the
files currently in the output directory. Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Diff(cmd.Context(), domain.DiffArgs{
				EmbedArgs:    embedArgsFromConfig(),
				FailOnChange: diffExitCodeFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&diffExitCodeFlag, exitCodeFlagName, false, "exit with status 1 when the sources differ")

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
