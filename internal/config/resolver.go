package config

import (
	"os"

	oerrors "github.com/sedlib/sedvet/internal/errors"
	"github.com/sedlib/sedvet/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceArg indicates value came from a positional argument.
	SourceArg ConfigSource = "arg"
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourcePackage indicates value came from the package environment.
	SourcePackage ConfigSource = "package"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its source.
type ResolvedValue struct {
	// Key names the setting.
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where Value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// candidate is one possible source for a value, in precedence order.
type candidate struct {
	source ConfigSource
	value  string
}

// resolve picks the first non-empty candidate and records the rest as shadowed.
func resolve(key string, candidates ...candidate) ResolvedValue {
	result := ResolvedValue{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
	}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}
	return result
}

// ResolveRootOptions contains options for library root resolution.
type ResolveRootOptions struct {
	// ArgValue is the positional root argument (empty if not given).
	ArgValue string
	// ConfigValue is the root from the config file (empty if not set).
	ConfigValue string
}

// ResolveRoot resolves the library root using precedence:
// (1) positional argument, (2) SEDVET_ROOT env, (3) config.root,
// (4) SIMS_SED_LIBRARY_DIR from the package environment.
//
// It returns a not-found error when no source provides a root.
func ResolveRoot(opts ResolveRootOptions) (ResolvedValue, error) {
	result := resolve("root",
		candidate{SourceArg, opts.ArgValue},
		candidate{SourceEnv, os.Getenv(EnvRoot)},
		candidate{SourceConfig, opts.ConfigValue},
		candidate{SourcePackage, os.Getenv(EnvPackageDir)},
	)

	if result.Source == "" {
		return result, oerrors.NewNotFoundError(
			"no SED library root configured",
			"",
			"pass the root as an argument, set "+EnvRoot+", set root in the config file, or set up sims_sed_library",
		)
	}

	expanded, err := ExpandPath(result.Value)
	if err != nil {
		return result, err
	}
	result.Value = expanded

	return result, nil
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SEDVET_CONFIG env, (3) ~/.sedvet/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{Key: "config"}, err
	}

	return resolve("config",
		candidate{SourceFlag, opts.FlagValue},
		candidate{SourceEnv, os.Getenv(EnvConfig)},
		candidate{SourceDefault, paths.ConfigFile},
	), nil
}

// ResolveOutputOptions contains options for report format resolution.
type ResolveOutputOptions struct {
	// FlagValue is the --output flag value, set only when the user passed it.
	FlagValue string
	// ConfigValue is the output format from the config file.
	ConfigValue string
}

// ResolveOutput resolves the report format using precedence:
// (1) --output flag, (2) SEDVET_OUTPUT env, (3) config.output, (4) text
func ResolveOutput(opts ResolveOutputOptions) ResolvedValue {
	return resolve("output",
		candidate{SourceFlag, opts.FlagValue},
		candidate{SourceEnv, os.Getenv(EnvOutput)},
		candidate{SourceConfig, opts.ConfigValue},
		candidate{SourceDefault, string(output.FormatText)},
	)
}

// ResolveSubdirs resolves the subtrees to validate using precedence:
// (1) --subdir flags, (2) config.subdirs, (3) the standard three.
func ResolveSubdirs(flagValues, configValues []string) ([]string, ConfigSource) {
	switch {
	case len(flagValues) > 0:
		return flagValues, SourceFlag
	case len(configValues) > 0:
		return configValues, SourceConfig
	default:
		return DefaultSubdirs(), SourceDefault
	}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
