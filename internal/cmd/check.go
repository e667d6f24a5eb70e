package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	oerrors "github.com/sedlib/sedvet/internal/errors"
	"github.com/sedlib/sedvet/internal/output"
	"github.com/sedlib/sedvet/internal/sed"
)

// NewCheckCmd creates the check command.
func NewCheckCmd(cfg *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>...",
		Short: "Validate individual SED files or directories",
		Long: `Validate individual SED files before adding them to a library.

Each file gets the same checks as "sedvet vet". Directories are walked
recursively. Paths are reported as given.

Examples:
  # Check a new SED
  sedvet check ./new_galaxy.dat.gz

  # Check a directory of candidates
  sedvet check ./incoming/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCheck(c, cfg, args)
		},
	}
}

// runCheck validates the given paths.
func runCheck(c *cobra.Command, cfg *GlobalConfig, paths []string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			return oerrors.NewNotFoundError("path does not exist", p, "")
		}
	}

	validator := sed.NewValidator(sed.WithLogger(output.Logger()))

	var result *sed.Result
	err := runValidation(c, cfg, "Checking files", func() error {
		var verr error
		result, verr = validator.VerifyPaths(paths)
		return verr
	})
	if err != nil {
		return abortError(err)
	}

	return reportResult(c, cfg, result)
}
