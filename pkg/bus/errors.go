package bus

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCommand indicates an empty command text.
	ErrEmptyCommand = errors.New("empty command")
	// ErrBadID indicates an unusable node identity.
	ErrBadID = errors.New("invalid node identity")
)

// InvalidFrameError indicates a received line without the controller
// envelope prefix. It carries the raw text for diagnostics.
type InvalidFrameError struct {
	Raw string
}

// Error implements error.
func (e *InvalidFrameError) Error() string {
	return fmt.Sprintf("invalid response frame: %q", e.Raw)
}

// BadCommandError indicates command text that cannot be framed because it
// contains an envelope delimiter.
type BadCommandError struct {
	Cmd string
}

// Error implements error.
func (e *BadCommandError) Error() string {
	return fmt.Sprintf("command text contains envelope delimiter: %q", e.Cmd)
}
