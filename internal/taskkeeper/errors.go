package taskkeeper

import (
	"errors"
	"fmt"
)

var (
	// ErrTaskNotFound is returned when an operation names an id not in the collection
	ErrTaskNotFound = errors.New("task not found")
	// ErrEmptyText is returned by Create when the description is blank
	ErrEmptyText = errors.New("task text is empty")
)

// Kind classifies a failed operation
type Kind int

const (
	KindUnknown Kind = iota
	KindFetch
	KindSubmit
	KindToggle
	KindDelete
	KindNotifyMark
)

func (k Kind) String() string {
	switch k {
	case KindFetch:
		return "fetch"
	case KindSubmit:
		return "submit"
	case KindToggle:
		return "toggle"
	case KindDelete:
		return "delete"
	case KindNotifyMark:
		return "notify mark"
	}
	return "unknown"
}

// message is the text shown in the single error slot
func (k Kind) message() string {
	switch k {
	case KindFetch:
		return "Failed to load tasks. Please try again."
	case KindSubmit:
		return "Failed to add task. Please try again."
	case KindToggle:
		return "Failed to update task. Please try again."
	case KindDelete:
		return "Failed to delete task. Please try again."
	case KindNotifyMark:
		return "Failed to save reminder status."
	}
	return "Something went wrong. Please try again."
}

// Error is returned by every TaskList operation that fails
type Error struct {
	Kind   Kind
	TaskID int64 // zero for fetch and submit
	Err    error
}

func (e *Error) Error() string {
	if e.TaskID != 0 {
		return fmt.Sprintf("%s task %d: %v", e.Kind, e.TaskID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message is the user-facing text for the error
func (e *Error) Message() string {
	return e.Kind.message()
}

// KindOf returns the Kind of err, or KindUnknown if err is not an *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func wrap(kind Kind, id int64, err error) error {
	return &Error{Kind: kind, TaskID: id, Err: err}
}
