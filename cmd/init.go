package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default reconmut.yaml configuration file",
		Long: `Create a reconmut.yaml in the current working directory holding the current
settings so it can be edited manually. The file carries:

  output, mutations, catalog        output directory, type selector, custom catalog
  paths.include, paths.keywords     controller discovery globs and file name keywords
  paths.exclude                     regular expressions of files to skip
  generate.strategy, .parallel      copy or deferred, concurrent copies
  ui.no_tui                         force plain output
  log.*                             log file, level and rotation

Every key can also be set with a RECONMUT_ environment variable, for example
RECONMUT_GENERATE_STRATEGY=copy.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			keys := viper.AllKeys()
			sort.Strings(keys)

			cmd.Printf("Wrote %s\n", targetPath)

			for _, key := range keys {
				cmd.Printf("  %s: %v\n", key, viper.Get(key))
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
