package backend

import (
	"bytes"
	"fmt"
	"os/exec"
)

// runner executes a one-shot command and returns its standard output.
// Backends hold a runner field so tests can substitute canned output.
type runner func(name string, args ...string) ([]byte, error)

// runCommand is the real runner. Stderr is folded into the error so the
// diagnostic shown to the user names the actual failure.
func runCommand(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			err = fmt.Errorf("%w: %s", err, bytes.TrimSpace(stderr.Bytes()))
		}
		return nil, &CommandError{Command: name, Err: err}
	}

	return stdout.Bytes(), nil
}
