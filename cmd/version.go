package cmd

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"gooze.dev/pkg/reconmut/internal/domain/mutagens"
	m "gooze.dev/pkg/reconmut/internal/model"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Displays the reconmut build version, the Go version it was built with and
the built-in mutation catalog (types and operator count).`,
		Run: func(cmd *cobra.Command, _ []string) {
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				cmd.Println("reconmut version\t", info.Main.Version)
				cmd.Println("go version\t", info.GoVersion)
			} else {
				cmd.Println("version: unknown")
			}

			types := make([]string, len(m.AllMutationTypes))
			for i, mutationType := range m.AllMutationTypes {
				types[i] = string(mutationType)
			}

			cmd.Println("mutation types\t", strings.Join(types, ","))
			cmd.Println("operators\t", mutagens.DefaultCatalog().Len())
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
