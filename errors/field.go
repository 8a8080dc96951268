package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field attributes err to the named attribute of a validated value, for
// example the Signer of an envelope. It returns nil if err is nil.
//
// Nested attributes use dot notation, list elements use their index:
// Signatures.2.Signer.
func Field(name string, err error) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &fieldError{name: name, parent: err}
}

// AppendField appends a field error to errs. Nothing is appended when err is
// nil, so that a whole value can be validated with a chain of calls.
func AppendField(errs error, name string, err error) error {
	return Append(errs, Field(name, err))
}

type fieldError struct {
	name   string
	parent error
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.name, e.parent)
}

func (e *fieldError) Cause() error {
	return e.parent
}

func (e *fieldError) Unwrap() error {
	return e.parent
}

func (e *fieldError) Field() string {
	return e.name
}

type fielder interface {
	Field() string
}

// FieldErrors returns all errors attributed to the named field. When the
// same field is nested, only the outermost error is returned.
func FieldErrors(err error, name string) []error {
	var found []error
	for !isNilErr(err) {
		if f, ok := err.(fielder); ok && f.Field() == name {
			return append(found, err)
		}
		if u, ok := err.(unpacker); ok {
			// Unpack returns all children, there is no need to
			// follow the cause as well.
			for _, child := range u.Unpack() {
				found = append(found, FieldErrors(child, name)...)
			}
			return found
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return found
}
