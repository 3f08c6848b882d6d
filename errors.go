package pattern

import (
	"errors"
	"strconv"
)

// ErrCompile is matched by every error returned from Compile and CompileWith.
var ErrCompile = errors.New("pattern: compile failed")

// CompileError reports a pattern the engine rejected. Err is the engine's
// diagnostic, unmodified.
type CompileError struct {
	Source string
	Err    error
}

func (e *CompileError) Error() string {
	return "pattern: compile " + strconv.Quote(e.Source) + ": " + e.Err.Error()
}

// Unwrap exposes both [ErrCompile] and the engine error to [errors.Is] and
// [errors.As].
func (e *CompileError) Unwrap() []error {
	return []error{ErrCompile, e.Err}
}
