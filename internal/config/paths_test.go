package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	paths, err := DefaultPaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".sedvet"), paths.HomeDir)
	assert.Equal(t, filepath.Join(home, ".sedvet", "config.yaml"), paths.ConfigFile)
}

func TestGetConfigFile_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfig, "/custom/config.yaml")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config.yaml", path)
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty path", input: "", expected: ""},
		{name: "absolute path", input: "/absolute/path", expected: "/absolute/path"},
		{name: "relative path", input: "relative/path", expected: "relative/path"},
		{name: "home only", input: "~", expected: homeDir},
		{name: "home with path", input: "~/sims_sed_library", expected: filepath.Join(homeDir, "sims_sed_library")},
		{name: "other user not supported", input: "~other/lib", expected: "~other/lib"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
