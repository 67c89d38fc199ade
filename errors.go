package zoomer

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
)

// ErrInit is matched by every *InitError via errors.Is.
var ErrInit = errors.New("zoomer: initialization failed")

// InitError reports that a subsystem (window, renderer, display info,
// capture, texture) could not be set up. It is fatal: the top-level driver
// prints it and terminates the process.
type InitError struct {
	// Subsystem names the failing collaborator, e.g. "capture" or "window".
	Subsystem string

	// File and Line locate the call site that gave up.
	File string
	Line int

	// Err is the upstream error.
	Err error
}

// NewInitError wraps err as an InitError for subsystem, recording the
// caller's file and line for the diagnostic.
func NewInitError(subsystem string, err error) *InitError {
	e := &InitError{Subsystem: subsystem, Err: err}
	if _, file, line, ok := runtime.Caller(1); ok {
		e.File = filepath.Base(file)
		e.Line = line
	}
	return e
}

func (e *InitError) Error() string {
	msg := fmt.Sprintf("could not initialize %s: %v", e.Subsystem, e.Err)
	if e.File == "" {
		return msg
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, msg)
}

func (e *InitError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInit.
func (e *InitError) Is(target error) bool { return target == ErrInit }
