// Package cmd provides the root command and CLI setup for reconmut.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/reconmut/internal/adapter"
	"gooze.dev/pkg/reconmut/internal/controller"
	"gooze.dev/pkg/reconmut/internal/domain"
	"gooze.dev/pkg/reconmut/internal/domain/mutagens"
	m "gooze.dev/pkg/reconmut/internal/model"
)

var goFileAdapter adapter.GoFileAdapter
var sourceFSAdapter adapter.SourceFSAdapter
var manifestStore adapter.ManifestStore
var catalogLoader adapter.CatalogLoader

// workflow is built on first use from the resolved flags; tests replace it.
var workflow domain.Workflow

var (
	rootFlag      string
	outputFlag    string
	mutationsFlag string
	catalogFlag   string
	logFileFlag   string
	verboseFlag   bool
	noTUIFlag     bool
	excludeFlag   []string
)

func init() {
	configureRootFlags(rootCmd)

	goFileAdapter = adapter.NewLocalGoFileAdapter()
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	manifestStore = adapter.NewJSONManifestStore()
	catalogLoader = adapter.NewFileCatalogLoader()
}

const filesHelp = `Without file arguments, controller sources are discovered under the
project root: files below a controllers/ or controller/ directory whose
name mentions "controller" or "reconcile". Tests and vendored code are
never scanned.`

const rootLongDescription = `Reconmut generates mutants of Kubernetes-style reconciliation controllers.
Each mutant changes exactly one source line (a flipped condition, a swallowed
error, a dropped requeue, a suppressed status write) so a test suite can be
checked for whether it notices.

` + filesHelp

const generateLongDescription = `Scan controller sources and materialize every mutation candidate.

The deferred strategy (default) only writes a manifest; mutants are applied
in place later with "apply" and "revert". The copy strategy writes one full
copy of the project per mutant under the output directory.

` + filesHelp

const listLongDescription = `List mutation candidates without writing anything.

` + filesHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "reconmut",
		Short:         "Mutant generator for reconciliation controllers",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a root command with the persistent flags attached.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&rootFlag, rootFlagName, "r", "", "operator project root (default: nearest directory with go.mod)")
	bindFlagToConfig(flags.Lookup(rootFlagName), rootFlagName)

	flags.StringVarP(&outputFlag, outputFlagName, "o", viper.GetString(outputFlagName), "output directory for mutants and the manifest")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputFlagName)

	flags.StringVarP(&mutationsFlag, mutationsFlagName, "m", viper.GetString(mutationsFlagName),
		"mutation types to enable: all or a comma-separated list of conditionals,error-handling,returns,requeue,status,api-calls")
	bindFlagToConfig(flags.Lookup(mutationsFlagName), mutationsFlagName)

	flags.StringArrayVarP(&excludeFlag, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.StringVar(&catalogFlag, catalogFlagName, viper.GetString(catalogFlagName), "YAML or TOML file with extra mutation operators")
	bindFlagToConfig(flags.Lookup(catalogFlagName), catalogFlagName)

	flags.BoolVar(&noTUIFlag, noTUIFlagName, viper.GetBool(noTUIConfigKey), "print plain text even on a terminal")
	bindFlagToConfig(flags.Lookup(noTUIFlagName), noTUIConfigKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// resolveWorkflow returns the injected workflow or wires one from config.
func resolveWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	catalog, err := loadCatalog(cmd.Context(), viper.GetString(catalogFlagName))
	if err != nil {
		return nil, err
	}

	useTTY := !viper.GetBool(noTUIConfigKey) && controller.IsTTY(cmd.OutOrStdout())

	return domain.NewWorkflow(
		sourceFSAdapter,
		manifestStore,
		controller.NewUI(cmd, useTTY),
		domain.NewMutagen(goFileAdapter, sourceFSAdapter, catalog),
		domain.NewPatcher(sourceFSAdapter),
	), nil
}

// loadCatalog returns the built-in catalog extended with the operators of path.
func loadCatalog(ctx context.Context, path string) (mutagens.Catalog, error) {
	catalog := mutagens.DefaultCatalog()
	if path == "" {
		return catalog, nil
	}

	defs, err := catalogLoader.Load(ctx, m.Path(path))
	if err != nil {
		return mutagens.Catalog{}, err
	}

	operators, err := mutagens.FromDefinitions(defs)
	if err != nil {
		return mutagens.Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}

	return catalog.With(operators...), nil
}

// resolveRoot returns --root or the nearest enclosing Go module.
func resolveRoot(ctx context.Context) m.Path {
	if root := viper.GetString(rootFlagName); root != "" {
		return m.Path(root)
	}

	root, err := sourceFSAdapter.FindProjectRoot(ctx, ".")
	if err != nil {
		return "."
	}

	return root
}

func scanArgs(ctx context.Context, args []string) domain.ScanArgs {
	return domain.ScanArgs{
		Root:      resolveRoot(ctx),
		Files:     parsePaths(args),
		Discovery: discoveryRule(),
		Mutations: viper.GetString(mutationsFlagName),
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func parseMutationID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid mutation id %q: expected a positive number", arg)
	}

	return uint(id), nil
}
