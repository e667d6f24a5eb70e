//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrPermission, ErrNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "not found",
		Message:  "library root does not exist",
		Location: "/data/sims_sed_library",
		Context:  map[string]string{"Source": "env"},
		Hint:     "Pass the root as an argument",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: not found")
	assert.Contains(t, output, "Location: /data/sims_sed_library")
	assert.Contains(t, output, "Source: env")
	assert.Contains(t, output, "library root does not exist")
	assert.Contains(t, output, "Hint: Pass the root as an argument")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrNotFound,
	}

	assert.True(t, errors.Is(detail, ErrNotFound))
	assert.Equal(t, ErrNotFound, detail.Unwrap())
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("no root", "/missing", "set SEDVET_ROOT")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "not found", detail.Type)
	assert.Equal(t, "no root", detail.Message)
	assert.Equal(t, "/missing", detail.Location)
	assert.Equal(t, "set SEDVET_ROOT", detail.Hint)
}

func TestNewPermissionError(t *testing.T) {
	err := NewPermissionError("cannot read", "/locked", "")
	assert.True(t, errors.Is(err, ErrPermission))
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrValidation, "3 files failed")

	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.Contains(t, wrapped.Error(), "3 files failed")
}

func TestExitError(t *testing.T) {
	inner := errors.New("boom")
	exitErr := NewExitError(inner, ExitValidationError)

	assert.Equal(t, "boom", exitErr.Error())
	assert.True(t, errors.Is(exitErr, inner))
	assert.False(t, exitErr.Printed)

	assert.Equal(t, "exit status 2", (&ExitError{Code: 2}).Error())
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			wantCode: ExitSuccess,
		},
		{
			name:     "exit error code wins",
			err:      fmt.Errorf("outer: %w", &ExitError{Code: ExitValidationError, Err: ErrNotFound}),
			wantCode: ExitValidationError,
		},
		{
			name:     "wrapped validation error",
			err:      Wrap(ErrValidation, "failures found"),
			wantCode: ExitValidationError,
		},
		{
			name:     "permission sentinel",
			err:      ErrPermission,
			wantCode: ExitPermissionDenied,
		},
		{
			name:     "fs permission error",
			err:      &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrPermission},
			wantCode: ExitPermissionDenied,
		},
		{
			name:     "not found sentinel",
			err:      NewNotFoundError("missing", "", ""),
			wantCode: ExitNotFound,
		},
		{
			name:     "fs not exist error",
			err:      &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist},
			wantCode: ExitNotFound,
		},
		{
			name:     "unknown error returns general error",
			err:      errors.New("unknown error"),
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitGeneralError)
	assert.Equal(t, 2, ExitValidationError)
	assert.Equal(t, 4, ExitPermissionDenied)
	assert.Equal(t, 5, ExitNotFound)
}
