package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/reconmut/internal/domain"
	m "gooze.dev/pkg/reconmut/internal/model"
)

var applyCmd = newApplyCmd()
var revertCmd = newRevertCmd()

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <id>",
		Short: "Apply one mutation from the manifest to the working tree",
		Long: `Rewrite the line of the given manifest entry in place. The line must still
hold its original text; run "revert" with the same id to undo.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patchArgs, err := newPatchArgs(cmd, args[0])
			if err != nil {
				return err
			}

			wf, err := resolveWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Apply(cmd.Context(), patchArgs)
		},
	}
}

func newRevertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revert <id>",
		Short: "Undo a mutation applied with apply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patchArgs, err := newPatchArgs(cmd, args[0])
			if err != nil {
				return err
			}

			wf, err := resolveWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Revert(cmd.Context(), patchArgs)
		},
	}
}

func newPatchArgs(cmd *cobra.Command, arg string) (domain.PatchArgs, error) {
	id, err := parseMutationID(arg)
	if err != nil {
		return domain.PatchArgs{}, err
	}

	root, output := manifestTarget(cmd)

	return domain.PatchArgs{
		Root:   root,
		Output: output,
		ID:     id,
	}, nil
}

// manifestTarget returns the patch root and output directory for commands that
// read a manifest. Without --root the manifest is looked up under the nearest
// project root, and the root is left empty so the manifest's operator_root is
// patched.
func manifestTarget(cmd *cobra.Command) (m.Path, m.Path) {
	output := m.Path(viper.GetString(outputFlagName))
	if root := viper.GetString(rootFlagName); root != "" {
		return m.Path(root), output
	}

	return "", domain.OutputDir(resolveRoot(cmd.Context()), output)
}

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(revertCmd)
}
