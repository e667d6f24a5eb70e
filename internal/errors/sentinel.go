package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates at least one SED file failed a check.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a library root, subtree or file was not found.
	ErrNotFound = errors.New("not found")
)
