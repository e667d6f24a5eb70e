package output

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// IsTTY reports whether stderr is attached to a terminal. The spinner draws on
// stderr so that a redirected report on stdout stays clean.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title   string
	enabled func() bool
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// withTTYCheck overrides terminal detection.
func withTTYCheck(fn func() bool) SpinnerOption {
	return func(c *spinnerConfig) {
		c.enabled = fn
	}
}

// RunWithSpinner executes an action with a spinner.
// Returns the action's error if any.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title:   "Working...",
		enabled: IsTTY,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	// If not a TTY, just run the action directly
	if !cfg.enabled() {
		return action()
	}

	errCh := make(chan error, 1)
	finished := make(chan struct{})
	go func() {
		errCh <- action()
		close(finished)
	}()

	spinnerErr := spinner.New().
		Title(cfg.title).
		Context(ctx).
		Action(func() { <-finished }).
		Run()

	// The action is never abandoned: wait for it even if the spinner stopped early.
	if err := <-errCh; err != nil {
		return err
	}
	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return nil
}
