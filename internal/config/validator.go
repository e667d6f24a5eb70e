package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sedlib/sedvet/internal/output"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks the config for values sedvet cannot act on.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Output != "" && !output.OutputFormat(strings.ToLower(c.Output)).IsValid() {
		errs = append(errs, ValidationError{
			Field:   "output",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(output.ValidFormats(), ", "), c.Output),
		})
	}

	for i, sub := range c.Subdirs {
		field := fmt.Sprintf("subdirs[%d]", i)
		switch {
		case strings.TrimSpace(sub) == "":
			errs = append(errs, ValidationError{Field: field, Message: "must not be empty"})
		case filepath.IsAbs(sub):
			errs = append(errs, ValidationError{Field: field, Message: "must be relative to the library root"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
