package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/reconmut/internal/domain"
	m "gooze.dev/pkg/reconmut/internal/model"
)

var (
	strategyFlag string
	parallelFlag int
	dryRunFlag   bool
	shardFlag    string
	runIDFlag    string
)

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [files...]",
		Short: "Generate mutants for controller sources",
		Long:  generateLongDescription,
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

			return wf.Generate(cmd.Context(), domain.GenerateArgs{
				ScanArgs: scan,
				Output:   m.Path(viper.GetString(outputFlagName)),
				Strategy: m.Strategy(viper.GetString(strategyConfigKey)),
				Parallel: viper.GetInt(parallelConfigKey),
				RunID:    runIDFlag,
				DryRun:   dryRunFlag,
			})
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&strategyFlag, strategyFlagName, "s", viper.GetString(strategyConfigKey), "materialization strategy: deferred or copy")
	bindFlagToConfig(cmd.Flags().Lookup(strategyFlagName), strategyConfigKey)

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of mutants copied in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().BoolVar(&dryRunFlag, dryRunFlagName, false, "list the candidates without writing anything")
	cmd.Flags().StringVar(&runIDFlag, runIDFlagName, "", "run id recorded in the manifest (default: random)")
	addShardFlag(cmd)
}

func addShardFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&shardFlag, shardFlagName, "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
}
