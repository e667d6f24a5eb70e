package config

import (
	"os"
	"path/filepath"
)

// Environment variables read by sedvet.
const (
	// EnvConfig overrides the config file location.
	EnvConfig = "SEDVET_CONFIG"

	// EnvRoot overrides the library root.
	EnvRoot = "SEDVET_ROOT"

	// EnvOutput overrides the report format.
	EnvOutput = "SEDVET_OUTPUT"

	// EnvPackageDir is where the package environment publishes the location
	// of the set-up sims_sed_library.
	EnvPackageDir = "SIMS_SED_LIBRARY_DIR"
)

// Paths contains standard filesystem paths for sedvet.
type Paths struct {
	// ConfigFile is the path to the config file (~/.sedvet/config.yaml).
	ConfigFile string

	// HomeDir is the sedvet home directory (~/.sedvet).
	HomeDir string
}

// DefaultPaths returns the default paths for sedvet.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".sedvet")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// GetConfigFile returns the config file path.
// If SEDVET_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
