package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNotEditable is returned when the session no longer accepts values.
	ErrNotEditable = errors.New("tui: session already submitted")
)
