package proc

import "errors"

var (
	// ErrBadPID indicates a non-positive pid was passed to a reader.
	ErrBadPID = errors.New("proc: pid must be positive")

	// ErrNoProc indicates that the procfs root itself could not be listed.
	ErrNoProc = errors.New("proc: cannot list procfs root")
)
