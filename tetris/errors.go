package tetris

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is raised for malformed shape geometry or a shape that does not fit a board
	ErrConfig = errors.New("tetris: invalid configuration")
	// ErrInvalidState is raised when an operation is called with the falling piece in the wrong state
	ErrInvalidState = errors.New("tetris: invalid state")
	// ErrRange is raised for out-of-bounds catalog indices and board coordinates
	ErrRange = errors.New("tetris: out of range")
)

// misuse panics with an error wrapping kind. Callers can recover and test
// the kind with errors.Is.
func misuse(kind error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)))
}
