package backend

import (
	"errors"
	"fmt"
)

// ErrSkipRow marks a row of backend output that cannot become a record.
// parseRows drops such rows and keeps the rest of the batch.
var ErrSkipRow = errors.New("backend: unparseable row")

// CommandError reports a fallback command that could not run at all. It is
// a soft failure: callers show the message and the session continues.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("backend: %s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }
