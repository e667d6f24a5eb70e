// Package config provides configuration loading and management.
package config

import "github.com/sedlib/sedvet/internal/sed"

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the sedvet configuration.
// Loaded from ~/.sedvet/config.yaml.
type Config struct {
	// Root is the SED library root directory.
	// Env: SEDVET_ROOT, falling back to SIMS_SED_LIBRARY_DIR.
	Root string `mapstructure:"root" yaml:"root,omitempty"`

	// Subdirs are the library subtrees to validate, in order.
	// Default: starSED, galaxySED, agnSED.
	Subdirs []string `mapstructure:"subdirs" yaml:"subdirs,omitempty"`

	// Output is the report format: text, json, yaml or table.
	// Env: SEDVET_OUTPUT, Default: text
	Output string `mapstructure:"output" yaml:"output,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultSubdirs are the subtrees of a standard SED library.
func DefaultSubdirs() []string {
	return append([]string(nil), sed.DefaultSubdirs...)
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Subdirs: DefaultSubdirs(),
		Output:  "text",
	}
}
