// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sedlib/sedvet/internal/config"
	oerrors "github.com/sedlib/sedvet/internal/errors"
	"github.com/sedlib/sedvet/internal/output"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file, with defaults applied.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Output is the resolved report format.
	Output output.OutputFormat

	// Verbose enables debug logging.
	Verbose bool
}

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	config     string
	output     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for sedvet.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cfg := &GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "sedvet",
		Short: "Validate SED library contents",
		Long: `sedvet validates the contents of a spectral energy distribution (SED) library.

It walks the starSED/, galaxySED/ and agnSED/ subtrees of the library and
verifies, for every file:
  - the data loads as two columns (wavelength, flux)
  - the data contains no NaNs
  - the last header line, if any, ends with ")" (the units annotation)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: SEDVET_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "text",
		"Report format: "+strings.Join(output.ValidFormats(), ", ")+" (env: SEDVET_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewVetCmd(cfg))
	rootCmd.AddCommand(NewCheckCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, cfg *GlobalConfig) error {
	configPath, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: flags.config,
	})
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	loaded, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("loading config %s: %w", configPath.Value, err), oerrors.ExitGeneralError)
	}

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{
		Verbose: flags.verbose,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	var outputFlag string
	if cmd.Flags().Changed("output") {
		outputFlag = flags.output
	}
	format := config.ResolveOutput(config.ResolveOutputOptions{
		FlagValue:   outputFlag,
		ConfigValue: loaded.Output,
	})
	if !output.OutputFormat(strings.ToLower(format.Value)).IsValid() {
		return oerrors.NewExitError(
			fmt.Errorf("invalid output format %q (from %s): must be one of %s",
				format.Value, format.Source, strings.Join(output.ValidFormats(), ", ")),
			oerrors.ExitGeneralError,
		)
	}

	if flags.verbose {
		exists, _ := config.ConfigFileExists(configPath.Value)
		output.Debug("initializing CLI", "config", configPath.Value, "config_found", exists)
		config.LogResolvedValues([]config.ResolvedValue{configPath, format})
	}

	cfg.Config = loaded
	cfg.ConfigPath = configPath.Value
	cfg.Output = output.ParseOutputFormat(format.Value)
	cfg.Verbose = flags.verbose

	return nil
}
