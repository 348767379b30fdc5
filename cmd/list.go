package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"binres.dev/pkg/binres/internal/domain"
	m "binres.dev/pkg/binres/internal/model"
)

var listManifestFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the resources that would be embedded",
		Long: `List every file that a run would embed together with its generated
symbol and size. With --from-manifest a previously written manifest is shown
instead of scanning the input directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Inventory(cmd.Context(), domain.InventoryArgs{
				Input:    m.Path(viper.GetString(inputConfigKey)),
				Manifest: m.Path(listManifestFlag),
			})
		},
	}

	cmd.Flags().StringVar(&listManifestFlag, "from-manifest", "", "show the entries of a manifest file")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
