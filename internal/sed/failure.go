// Package sed validates spectral energy distribution (SED) libraries.
//
// A library is a directory tree of two-column (wavelength, flux) text files,
// optionally gzip-compressed. Each file is checked for NaN values in its data
// and for a last header line that ends in ")\n", the conventional units line
// such as "# Wavelength(nm)  Flambda(ergs/cm^s/s/nm)".
package sed

import (
	"path/filepath"
	"strings"
)

// Reason classifies why a file failed validation.
type Reason string

// The taxonomy is closed: every failure carries exactly one of these.
const (
	// ReasonNaN means the parsed data contains a NaN wavelength or flux.
	ReasonNaN Reason = "nan"

	// ReasonHeader means the last header line does not end in ")\n".
	ReasonHeader Reason = "header"

	// ReasonCouldNotLoad means the file could not be parsed as two-column data.
	ReasonCouldNotLoad Reason = "could not load"
)

// String returns the reason as printed in reports.
func (r Reason) String() string {
	return string(r)
}

// Failure records a single file that failed one check.
type Failure struct {
	// Path is the file path as visited: the walked directory joined with the
	// entry name.
	Path string `json:"path" yaml:"path"`

	// Reason is why the file failed.
	Reason Reason `json:"reason" yaml:"reason"`
}

// RelPath returns the failure path relative to root. Paths outside root are
// returned unchanged.
func (f Failure) RelPath(root string) string {
	rel, err := filepath.Rel(root, f.Path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return f.Path
	}
	return rel
}
