package service

import (
	"errors"

	"github.com/BuzzLyutic/task-registry/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
)

// Client-facing messages.
const (
	MsgInvalidID            = "Invalid task id"
	MsgTitleRequired        = "Title is required and cannot be empty"
	MsgDescriptionRequired  = "Description is required and cannot be empty"
	MsgCompletedNotBoolean  = "Completed must be a boolean and cannot be null or undefined"
	MsgInvalidPriorityLevel = "Invalid priority level. Valid values are 'low', 'medium', 'high'."
	MsgTaskNotFound         = "Task not found"
	MsgUpdateTaskNotFound   = "The task with the given id was not found"
)

// ValidationError reports malformed or missing input. It matches ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError wraps repo.ErrorNotFound with the message the caller should see.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Unwrap() error { return repo.ErrorNotFound }

func validationError(msg string) error {
	return &ValidationError{Message: msg}
}

// notFound swaps repo.ErrorNotFound for a NotFoundError carrying msg.
// Other errors pass through untouched.
func notFound(err error, msg string) error {
	if errors.Is(err, repo.ErrorNotFound) {
		return &NotFoundError{Message: msg}
	}
	return err
}
