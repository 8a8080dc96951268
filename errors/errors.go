package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Root errors. Codes are stable and reported by the command line tools.
var (
	// ErrInvalidKey is returned when key bytes cannot be decoded into a
	// valid secret scalar or curve point.
	ErrInvalidKey = Register(2, "invalid key")

	// ErrInvalidSignatureFormat is returned when signature bytes or their
	// hex representation are malformed.
	ErrInvalidSignatureFormat = Register(3, "invalid signature format")

	// ErrSignatureVerification is returned when a well formed signature
	// does not verify.
	ErrSignatureVerification = Register(4, "signature verification failed")

	// ErrTargetMismatch is returned when a signed digest or target type
	// disagrees with the recomputed one. This is the tamper signal.
	ErrTargetMismatch = Register(5, "target mismatch")

	// ErrInvalidThreshold is returned when a policy is built with
	// a threshold out of the [1, total] range. See ThresholdError.
	ErrInvalidThreshold = Register(6, "invalid threshold")

	// ErrInsufficientSignatures is returned when a quorum is not met. See
	// QuorumError.
	ErrInsufficientSignatures = Register(7, "insufficient signatures")

	ErrMessageFormat = Register(8, "message format")

	// ErrSerialization is returned when an envelope, a policy or a key
	// file cannot be decoded or encoded.
	ErrSerialization = Register(9, "serialization")

	ErrNotFound  = Register(10, "not found")
	ErrDuplicate = Register(11, "duplicate")
	ErrEmpty     = Register(12, "value is empty")

	// ErrInvalidType is returned for an unknown target or binary type.
	ErrInvalidType = Register(13, "invalid type")

	// ErrInvalidInput is returned for malformed command line arguments and
	// any other input that no more specific error describes.
	ErrInvalidInput = Register(14, "invalid input")

	// ErrInvalidState is returned for values that are well formed but not
	// acceptable, for example a timestamp before the epoch.
	ErrInvalidState = Register(15, "invalid state")

	// ErrPanic wraps a recovered panic. See Recover.
	ErrPanic = Register(111222, "panic")
)

// codes holds every registered root error. Code 1 is reserved for errors
// that do not wrap any of them.
var codes = map[uint32]*Error{
	internalCode: nil,
}

// Register declares a new root error with given code. Registering the same
// code twice panics, so it must be called only when initializing a package.
func Register(code uint32, description string) *Error {
	if e, ok := codes[code]; ok {
		panic(fmt.Sprintf("error code %d already used by %q", code, e.desc))
	}
	e := &Error{code: code, desc: description}
	codes[code] = e
	return e
}

// Error is a root error. Errors created at runtime wrap one of the root
// errors, so that a failure can always be mapped to a registered code.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// Code returns the registered code.
func (e Error) Code() uint32 {
	return e.code
}

// New is a shortcut for Wrap(e, description).
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Is returns true if err is this root error or wraps it. A multi error
// matches when any of its members does.
//
// A nil kind matches only a nil error, including a typed nil.
func (kind *Error) Is(err error) bool {
	if kind == nil {
		return isNilErr(err)
	}
	for err != nil {
		if err == kind {
			return true
		}
		if u, ok := err.(unpacker); ok {
			for _, member := range u.Unpack() {
				if kind.Is(member) {
					return true
				}
			}
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

// Wrap returns err annotated with description, or nil if err is nil.
//
// A stack trace is attached to the innermost wrap only.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{msg: description, parent: err}
}

// Wrapf is Wrap with a formatted description.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.parent.Error()
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Unwrap makes the chain visible to the standard library errors.Is and
// errors.As.
func (e *wrappedError) Unwrap() error {
	return e.parent
}

// Recover turns a panic into an ErrPanic assigned to err. It must be called
// with defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}
