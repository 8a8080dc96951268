/*
Package assert provides the small set of assertions used by quorum tests.
Each assertion stops the test on failure.
*/
package assert

import (
	"bytes"
	"reflect"

	"github.com/iov-one/quorum/errors"
)

// Tester is the part of testing.TB the assertions use.
type Tester interface {
	Helper()
	Logf(string, ...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test if value is not nil. Typed nil values pass.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v prints the stack trace of an error.
		t.Fatalf("want nil, got %+v", value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// Equal fails the test if want and got are not deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("not equal\nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// EqualBytes is Equal for byte slices, printed in hex.
func EqualBytes(t Tester, want, got []byte) {
	t.Helper()
	if !bytes.Equal(want, got) {
		t.Fatalf("bytes not equal\nwant %x\n got %x", want, got)
	}
}

// IsErr fails the test unless got is of the want kind. A nil want matches
// only a nil error.
func IsErr(t Tester, want *errors.Error, got error) {
	t.Helper()
	if !want.Is(got) {
		t.Fatalf("want %v error, got %+v", want, got)
	}
}

// FieldError fails the test unless err holds exactly one error attributed to
// the named field and that error is of the want kind. A nil want asserts
// that the field has no error.
func FieldError(t Tester, err error, field string, want *errors.Error) {
	t.Helper()

	found := errors.FieldErrors(err, field)
	if want == nil && len(found) == 0 {
		return
	}
	if len(found) == 1 && want != nil {
		if !want.Is(found[0]) {
			t.Fatalf("%s: want %v error, got %+v", field, want, found[0])
		}
		return
	}
	for i, e := range found {
		t.Logf("%s error %d: %v", field, i+1, e)
	}
	if want == nil {
		t.Fatalf("%s: want no error, got %d", field, len(found))
	}
	t.Fatalf("%s: want one %v error, got %d", field, want, len(found))
}
