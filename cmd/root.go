// Package cmd provides the root command and CLI setup for binres.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"binres.dev/pkg/binres/internal/adapter"
	"binres.dev/pkg/binres/internal/controller"
	"binres.dev/pkg/binres/internal/domain"
	m "binres.dev/pkg/binres/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var manifestStore adapter.ManifestStore
var scanner domain.Scanner
var workflow domain.Workflow
var ui controller.UI

// Root-level flags shared by every command that renders sources.
var (
	inputFlag     string
	outputFlag    string
	headerFlag    string
	basenameFlag  string
	namespaceFlag string
	verboseFlag   bool
	logFileFlag   string
)

// manifestFlag is local to the root command: only a real run writes one.
var manifestFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	manifestStore = adapter.NewManifestStore(fsAdapter)
	scanner = domain.NewScanner(fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		manifestStore,
		ui,
		scanner,
	)
}

const rootLongDescription = `binres converts every file under a resources directory into a C++ byte
array so it can be linked straight into the application binary.

Two translation units are generated in the output directory:
  - <basename>.h    extern declarations and size constants
  - <basename>.cpp  the byte arrays

Subdirectories become nested namespaces (lowercased); hidden entries are
skipped. Outputs are replaced only after the whole tree was rendered.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "binres",
		Short:        "Embed binary resources into generated C++ sources",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			args := embedArgsFromConfig()
			args.Manifest = m.Path(viper.GetString(manifestConfigKey))

			return workflow.Embed(cmd.Context(), args)
		},
	}
}

// newRootCmd builds a fully configured root command without the global
// subcommands attached.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&inputFlag, inputFlagName, "i", viper.GetString(inputConfigKey), "input directory in which to search resources")
	bindFlagToConfig(flags.Lookup(inputFlagName), inputConfigKey)

	flags.StringVarP(&outputFlag, outputFlagName, "o", viper.GetString(outputConfigKey), "output directory for generated files")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputConfigKey)

	flags.StringVar(&headerFlag, headerFlagName, viper.GetString(headerConfigKey), "license header prefixed to generated files")
	bindFlagToConfig(flags.Lookup(headerFlagName), headerConfigKey)

	flags.StringVar(&basenameFlag, basenameFlagName, viper.GetString(basenameConfigKey), "file name (without extension) of the generated sources")
	bindFlagToConfig(flags.Lookup(basenameFlagName), basenameConfigKey)

	flags.StringVar(&namespaceFlag, namespaceFlagName, viper.GetString(namespaceConfigKey), "outermost C++ namespace of the generated sources")
	bindFlagToConfig(flags.Lookup(namespaceFlagName), namespaceConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	cmd.Flags().StringVar(&manifestFlag, manifestFlagName, viper.GetString(manifestConfigKey), "also write a YAML manifest of the embedded files")
	bindFlagToConfig(cmd.Flags().Lookup(manifestFlagName), manifestConfigKey)
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
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func embedArgsFromConfig() domain.EmbedArgs {
	return domain.EmbedArgs{
		Input:     m.Path(viper.GetString(inputConfigKey)),
		Output:    m.Path(viper.GetString(outputConfigKey)),
		Header:    m.Path(viper.GetString(headerConfigKey)),
		Basename:  viper.GetString(basenameConfigKey),
		Namespace: viper.GetString(namespaceConfigKey),
	}
}
