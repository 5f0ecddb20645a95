package directory

import (
	"errors"
	"fmt"
)

// Kind classifies directory errors.
type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindForbidden  Kind = "forbidden"
	KindNotFound   Kind = "not_found"
	KindCapacity   Kind = "capacity"
	// KindIO marks persistence failures. They are warnings: the operation
	// itself took effect in memory.
	KindIO Kind = "io"
)

var (
	ErrUserCapacity         = errors.New("system has reached maximum user capacity")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrForbidden            = errors.New("not permitted")
	ErrInstructorNotFound   = errors.New("instructor not found")
	ErrCourseCapacity       = errors.New("maximum courses limit reached")
	ErrInvalidSelection     = errors.New("invalid course selection")
	ErrCourseNotFound       = errors.New("course not found")
	ErrCourseNotTaught      = errors.New("course is not on the teaching list")
	ErrInvalidQuestion      = errors.New("invalid question")
	ErrInvalidQuizSelection = errors.New("invalid quiz selection")
	ErrStudentNotFound      = errors.New("student not found")
	ErrSaveSkipped          = errors.New("save skipped")
)

// Error is returned by every directory operation. It unwraps to one of the
// sentinel errors above or to a validate sentinel.
type Error struct {
	Kind  Kind
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}

func fieldError(field string, err error) error {
	return &Error{Kind: KindValidation, Field: field, Err: err}
}

func forbidden(perm string) error {
	return &Error{Kind: KindForbidden, Err: fmt.Errorf("%w: requires %s", ErrForbidden, perm)}
}

func saveWarning(what string, err error) error {
	return &Error{Kind: KindIO, Err: fmt.Errorf("%w: %s: %w", ErrSaveSkipped, what, err)}
}

// KindOf returns the kind of a directory error, or "" for other errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsWarning reports whether err only signals a skipped save.
func IsWarning(err error) bool {
	return err != nil && KindOf(err) == KindIO
}
