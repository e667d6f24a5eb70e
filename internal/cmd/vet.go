package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/sedlib/sedvet/internal/config"
	oerrors "github.com/sedlib/sedvet/internal/errors"
	"github.com/sedlib/sedvet/internal/output"
	"github.com/sedlib/sedvet/internal/sed"
)

// vetOptions holds the flags for the vet command.
type vetOptions struct {
	subdirs []string
}

// NewVetCmd creates the vet command.
func NewVetCmd(cfg *GlobalConfig) *cobra.Command {
	opts := &vetOptions{}

	c := &cobra.Command{
		Use:   "vet [root]",
		Short: "Validate every file in a SED library",
		Long: `Validate the contents of a SED library.

Walks the starSED/, galaxySED/ and agnSED/ subtrees of the library root and
reports every file that cannot be loaded, contains NaNs, or whose last header
line does not end with ")". Validating a full library takes a long time; run it
after updating the library.

Arguments:
  root    Library root directory. When omitted, the root comes from
          SEDVET_ROOT, the config file, or the set-up sims_sed_library
          (SIMS_SED_LIBRARY_DIR), in that order.

Exit codes:
  0  every file passed
  2  one or more files failed
  4  a library directory could not be read
  5  the library root or a subtree does not exist

Examples:
  # Validate the set-up sims_sed_library
  sedvet vet

  # Validate a specific library
  sedvet vet /data/sims_sed_library

  # Validate only the galaxy SEDs, as JSON
  sedvet vet /data/sims_sed_library --subdir galaxySED -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runVet(c, cfg, opts, args)
		},
	}

	c.Flags().StringArrayVar(&opts.subdirs, "subdir", nil,
		"Library subtree to validate (can be repeated; default: starSED, galaxySED, agnSED)")

	return c
}

// runVet validates the library.
func runVet(c *cobra.Command, cfg *GlobalConfig, opts *vetOptions, args []string) error {
	var argRoot string
	if len(args) > 0 {
		argRoot = args[0]
	}

	root, err := config.ResolveRoot(config.ResolveRootOptions{
		ArgValue:    argRoot,
		ConfigValue: cfg.Config.Root,
	})
	if err != nil {
		return err
	}

	subdirs, subdirSource := config.ResolveSubdirs(opts.subdirs, cfg.Config.Subdirs)
	config.LogResolvedValues([]config.ResolvedValue{root})
	output.Debug("subtrees resolved", "subdirs", subdirs, "source", subdirSource)

	if err := checkRoot(root); err != nil {
		return err
	}

	validator := sed.NewValidator(sed.WithLogger(output.Logger()))

	var result *sed.Result
	err = runValidation(c, cfg, "Validating "+root.Value, func() error {
		var verr error
		result, verr = validator.VerifyLibrary(root.Value, subdirs)
		return verr
	})
	if err != nil {
		return abortError(err)
	}

	return reportResult(c, cfg, result)
}

// checkRoot returns a detailed error when the resolved root is not a
// readable directory.
func checkRoot(root config.ResolvedValue) error {
	info, err := os.Stat(root.Value)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &oerrors.DetailError{
				Type:     "not found",
				Message:  "SED library root does not exist",
				Location: root.Value,
				Context:  map[string]string{"Source": string(root.Source)},
				Hint:     "check the path, or pass the library root as an argument",
				Cause:    oerrors.ErrNotFound,
			}
		}
		return err
	}
	if !info.IsDir() {
		return oerrors.NewNotFoundError("SED library root is not a directory", root.Value, "")
	}
	return nil
}

// runValidation runs action under a spinner. Verbose runs log every file, so
// the spinner is skipped to keep stderr readable.
func runValidation(c *cobra.Command, cfg *GlobalConfig, title string, action func() error) error {
	if cfg.Verbose {
		return action()
	}
	return output.RunWithSpinner(c.Context(), action, output.WithTitle(title))
}

// abortError logs a fatal traversal error and maps it to an exit code.
func abortError(err error) error {
	output.Error("validation aborted", "error", err)
	return &oerrors.ExitError{
		Code:    oerrors.ExitCodeFromError(err),
		Err:     err,
		Printed: true,
	}
}

// reportResult writes the report and returns a validation exit error when
// any file failed.
func reportResult(c *cobra.Command, cfg *GlobalConfig, result *sed.Result) error {
	if err := output.WriteReport(c.OutOrStdout(), cfg.Output, result); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	output.Info(output.FormatSummary(result))

	if result.OK() {
		return nil
	}
	return &oerrors.ExitError{
		Code:    oerrors.ExitValidationError,
		Err:     oerrors.Wrap(oerrors.ErrValidation, fmt.Sprintf("%d failure(s)", len(result.Failures))),
		Printed: true,
	}
}
