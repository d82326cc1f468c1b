package application

import (
	"errors"
	"fmt"
)

// ErrCancelled means the operator declined the confirmation prompt.
// No file operation has happened when it is returned.
var ErrCancelled = errors.New("sync cancelled")

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ApplyError represents a failed file operation during apply. The apply
// step stops at the first failure; already-applied operations are not
// rolled back.
type ApplyError struct {
	Op   string // "copy" or "delete"
	Name string
	Err  error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Name, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}
