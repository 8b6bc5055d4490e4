package tasklist

import (
	"errors"
	"fmt"
)

// ValidationReason names what was wrong with user input.
type ValidationReason string

// EmptyTask is reported when task text is blank after trimming.
const EmptyTask ValidationReason = "task text cannot be empty"

// ValidationError is a user-correctable input error. The store state is
// unchanged when one is returned.
type ValidationError struct {
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	return "tasklist: " + string(e.Reason)
}

// ErrEmptyTask is returned by AddTask and EditTask for blank text.
var ErrEmptyTask = &ValidationError{Reason: EmptyTask}

// CorruptPersistedStateError means the stored blob could not be parsed.
// The store is left empty; callers must not save over the blob.
type CorruptPersistedStateError struct {
	Err error
}

func (e *CorruptPersistedStateError) Error() string {
	return fmt.Sprintf("tasklist: persisted task list is corrupt: %v", e.Err)
}

func (e *CorruptPersistedStateError) Unwrap() error {
	return e.Err
}

// PersistenceWriteError means a mutation was applied in memory but could not
// be saved.
type PersistenceWriteError struct {
	Err error
}

func (e *PersistenceWriteError) Error() string {
	return fmt.Sprintf("tasklist: changes may not be saved: %v", e.Err)
}

func (e *PersistenceWriteError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
