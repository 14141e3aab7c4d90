package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrTooManyAttempts is returned when the prompt loop exhausts its
	// attempt budget without a valid answer.
	ErrTooManyAttempts = errors.New("tui: too many invalid attempts")
)
