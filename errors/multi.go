package errors

import (
	"fmt"
	"reflect"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no errors or only nil errors are provided, nil is returned.
//
// If only a single non-nil error is provided, it is returned unchanged.
//
// Multi errors are flattened so that the result never contains another
// multi error.
func Append(errs ...error) error {
	var res multiErr
	for _, err := range errs {
		if isNilErr(err) {
			continue
		}
		if m, ok := err.(multiErr); ok {
			res = append(res, m...)
		} else {
			res = append(res, err)
		}
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiErr is a list of errors reported together, for example all the
// invalid fields of a message.
type multiErr []error

func (m multiErr) Error() string {
	if len(m) == 1 {
		return m[0].Error()
	}
	points := make([]string, len(m))
	for i, err := range m {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(m), strings.Join(points, "\n\t"))
}

// Unpack returns all errors that this multi error holds.
func (m multiErr) Unpack() []error {
	return []error(m)
}

// Cause returns the first error to be consistent with the fail fast
// approach of the single error code a tool reports.
func (m multiErr) Cause() error {
	if len(m) == 0 {
		return nil
	}
	return m[0]
}

// unpacker is implemented by errors that group more than one error.
type unpacker interface {
	Unpack() []error
}

// isNilErr returns true if value represented by the given error is nil.
//
// Most of the time a simple == check is enough. There is a very narrowed
// spectrum of cases (mostly in tests) where a more sophisticated check is
// required.
func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	if val := reflect.ValueOf(err); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}
