package sed

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultSubdirs are the library subtrees validated when none are configured.
var DefaultSubdirs = []string{"starSED", "galaxySED", "agnSED"}

// Result is the outcome of validating a whole library.
type Result struct {
	// Root is the library root the subtrees were resolved against.
	Root string `json:"root" yaml:"root"`

	// Subdirs are the paths validated, in order, relative to Root.
	Subdirs []string `json:"subdirs" yaml:"subdirs"`

	// FilesChecked counts every non-directory entry visited.
	FilesChecked int `json:"filesChecked" yaml:"filesChecked"`

	// Failures are in traversal order.
	Failures []Failure `json:"failures" yaml:"failures"`
}

// OK reports whether every file passed.
func (r *Result) OK() bool {
	return len(r.Failures) == 0
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for per-file debug output.
func WithLogger(logger *log.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// Validator walks SED directory trees and checks every file it finds.
// It holds no state between calls.
type Validator struct {
	logger *log.Logger
}

// NewValidator creates a Validator.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// VerifyLibrary validates each subdir of root in order and returns the
// combined result. Any unreadable subtree aborts the run.
func (v *Validator) VerifyLibrary(root string, subdirs []string) (*Result, error) {
	if len(subdirs) == 0 {
		subdirs = DefaultSubdirs
	}

	result := &Result{
		Root:     root,
		Subdirs:  subdirs,
		Failures: []Failure{},
	}
	for _, sub := range subdirs {
		dir := filepath.Join(root, sub)
		sv := &Validator{logger: v.logger.WithPrefix(sub)}
		sv.logger.Debug("validating subtree", "dir", dir)

		failures, checked, err := sv.verifyTree(dir)
		if err != nil {
			return nil, err
		}
		result.Failures = append(result.Failures, failures...)
		result.FilesChecked += checked
	}
	return result, nil
}

// VerifyPaths validates each path in order: files directly, directories
// recursively. Result.Root is empty, so failures report paths as given.
func (v *Validator) VerifyPaths(paths []string) (*Result, error) {
	result := &Result{
		Subdirs:  paths,
		Failures: []Failure{},
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			result.Failures = append(result.Failures, v.CheckFile(p)...)
			result.FilesChecked++
			continue
		}

		failures, checked, err := v.verifyTree(p)
		if err != nil {
			return nil, err
		}
		result.Failures = append(result.Failures, failures...)
		result.FilesChecked += checked
	}
	return result, nil
}

// VerifyTree recursively checks every file under dir and returns the failures
// in traversal order. Entries are visited in the order the filesystem lists
// them. An unreadable dir, at any depth, is returned as an error.
func (v *Validator) VerifyTree(dir string) ([]Failure, error) {
	failures, _, err := v.verifyTree(dir)
	return failures, err
}

func (v *Validator) verifyTree(dir string) ([]Failure, int, error) {
	entries, err := readDirUnsorted(dir)
	if err != nil {
		return nil, 0, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var failures []Failure
	checked := 0
	for _, entry := range entries {
		fullName := filepath.Join(dir, entry.Name())

		if isDir(fullName, entry) {
			sub, n, err := v.verifyTree(fullName)
			if err != nil {
				return nil, 0, err
			}
			failures = append(failures, sub...)
			checked += n
			continue
		}

		failures = append(failures, v.CheckFile(fullName)...)
		checked++
	}
	return failures, checked, nil
}

// CheckFile runs the data and header checks on a single file. A file that
// cannot be loaded gets only a could-not-load failure; otherwise the NaN and
// header checks are independent and may both fail.
func (v *Validator) CheckFile(path string) []Failure {
	v.logger.Debug("checking file", "path", path)

	table, err := LoadTable(path)
	if err != nil {
		v.logger.Debug("could not load", "path", path, "error", err)
		return []Failure{{Path: path, Reason: ReasonCouldNotLoad}}
	}

	var failures []Failure
	if table.HasNaN() {
		v.logger.Debug("NaN in data", "path", path, "rows", table.Len())
		failures = append(failures, Failure{Path: path, Reason: ReasonNaN})
	}

	ok, err := CheckHeader(path)
	switch {
	case err != nil:
		v.logger.Debug("could not read header", "path", path, "error", err)
		failures = append(failures, Failure{Path: path, Reason: ReasonCouldNotLoad})
	case !ok:
		v.logger.Debug("bad header terminator", "path", path)
		failures = append(failures, Failure{Path: path, Reason: ReasonHeader})
	}
	return failures
}

// readDirUnsorted lists dir in the order the filesystem returns entries.
// os.ReadDir would sort them by name.
func readDirUnsorted(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ReadDir(-1)
}

// isDir reports whether entry is a directory, following symlinks.
func isDir(fullName string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(fullName)
	return err == nil && info.IsDir()
}
