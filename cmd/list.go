package cmd

import (
	"github.com/spf13/cobra"

	"gooze.dev/pkg/reconmut/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [files...]",
		Short: "List mutation candidates",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			shardIndex, totalShards, err := domain.ParseShard(shardFlag)
			if err != nil {
				return err
			}

			wf, err := resolveWorkflow(cmd)
			if err != nil {
				return err
			}

			scan := scanArgs(cmd.Context(), args)
			scan.ShardIndex = shardIndex
			scan.TotalShardCount = totalShards

			return wf.List(cmd.Context(), domain.ListArgs{ScanArgs: scan})
		},
	}

	addShardFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
