package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrUnauthorized is used whenever a call lacks the required identity
	// or permission.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound is used when a requested entity does not exist.
	ErrNotFound = Register(3, "not found")

	// ErrInput stands for general input problems: malformed addresses,
	// out-of-range parameters.
	ErrInput = Register(4, "invalid input")

	// ErrState is returned when stored data is in a shape the code does
	// not expect. Seeing it means the store was corrupted or written by
	// incompatible code.
	ErrState = Register(5, "invalid state")

	// ErrDuplicate is returned when a value that must be unique repeats.
	ErrDuplicate = Register(6, "duplicate")

	// ErrEmpty is returned when a value fails a not-empty assertion.
	ErrEmpty = Register(7, "value is empty")

	// ErrAmount stands for an invalid amount of the asset.
	ErrAmount = Register(8, "invalid amount")

	// ErrOverflow is returned when a computation cannot be completed
	// because the result exceeds the type. Checked balance arithmetic
	// reports underflow through this kind as well.
	ErrOverflow = Register(9, "value overflow")

	// ErrDatabase is returned when the backing store misbehaves.
	ErrDatabase = Register(10, "database error")

	// ErrHuman is returned when a code path is reached that correct code
	// never reaches.
	ErrHuman = Register(11, "coding error")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info.
	ErrPanic = Register(111222, "panic")
)

// usedCodes tracks registered codes to guarantee their uniqueness. Code 1 is
// reserved for errors that did not originate from a registered kind.
var usedCodes = map[uint32]*Error{
	1: nil,
}

// Register returns an error instance to be used as the base for creating
// error values during runtime.
//
// Popular kinds are declared in this package, extensions (for example the
// vault package) declare their own in a separate code range. Reusing a code
// panics, so call this only during program startup.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{
		code: code,
		desc: description,
	}
	usedCodes[code] = err
	return err
}

// Error represents a registered error kind. Instances created during runtime
// wrap one of the registered kinds, which allows safe error classification
// across package boundaries.
type Error struct {
	code uint32
	desc string
}

func (e *Error) Error() string {
	return e.desc
}

// Code returns the unique numeric identifier of this kind.
func (e *Error) Code() uint32 {
	return e.code
}

// New returns a new error with this kind as the root cause.
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is New with formatting capabilities.
func (e *Error) Newf(description string, args ...interface{}) error {
	return e.New(fmt.Sprintf(description, args...))
}

// Is checks whether the given error is of this kind, unwrapping the cause
// chain as needed.
func (kind *Error) Is(err error) bool {
	// Reflection is needed to compare correctly with typed nil
	// implementations of the error interface.
	if kind == nil {
		if err == nil {
			return true
		}
		return reflect.ValueOf(err).IsNil()
	}

	for {
		if err == kind {
			return true
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
}

// Wrap extends the given error with additional context. If err is nil, Wrap
// returns nil, so results can be wrapped unconditionally.
//
// The first wrap in a cause chain also attaches a stack trace, pointing at
// the frame where the error was produced.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}

	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	return &wrappedError{
		parent: err,
		msg:    description,
	}
}

// Wrapf extends the given error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	// This layer's description.
	msg string
	// The underlying error that triggered this one.
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Recover captures a panic and stops its propagation, converting it into an
// ErrPanic instance assigned to the given error. Call via defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// causer is implemented by errors that support wrapping. Used to test if an
// error wraps another instance.
type causer interface {
	Cause() error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the attached stack trace, searching the whole cause
// chain, or nil when none was attached yet.
func stackTrace(err error) errors.StackTrace {
	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		c, ok := err.(causer)
		if !ok {
			return nil
		}
		err = c.Cause()
	}
}
