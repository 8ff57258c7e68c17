package cmd

import (
	"github.com/spf13/cobra"

	"gooze.dev/pkg/reconmut/internal/domain"
)

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the diff of one mutation from the manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseMutationID(args[0])
			if err != nil {
				return err
			}

			wf, err := resolveWorkflow(cmd)
			if err != nil {
				return err
			}

			root, output := manifestTarget(cmd)

			return wf.Show(cmd.Context(), domain.ShowArgs{
				Root:   root,
				Output: output,
				ID:     id,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
