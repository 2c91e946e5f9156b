package device

import "fmt"

// CodeMismatchError indicates a response whose leading command code
// differs from the request's. It carries the raw response text for
// diagnostics.
type CodeMismatchError struct {
	Code     byte
	Response string
}

// Error implements error.
func (e *CodeMismatchError) Error() string {
	return fmt.Sprintf("unexpected response for command %q: %q", e.Code, e.Response)
}
