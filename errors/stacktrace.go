package errors

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Frames of these functions are where errors are created, not where they
// happen, so they are never shown.
var creatorFuncs = []string{
	"github.com/iov-one/quorum/errors.Wrap",
	"github.com/iov-one/quorum/errors.Wrapf",
	"github.com/iov-one/quorum/errors.Field",
	"github.com/iov-one/quorum/errors.(*Error).New",
	"github.com/iov-one/quorum/errors.NewThresholdError",
	"github.com/iov-one/quorum/errors.NewQuorumError",
	"runtime.",
}

// frameFunc returns the function of a frame. A pkg/errors frame is the
// program counter plus one.
func frameFunc(f errors.Frame) (*runtime.Func, uintptr) {
	pc := uintptr(f) - 1
	return runtime.FuncForPC(pc), pc
}

func frameHasPrefix(f errors.Frame, prefixes ...string) bool {
	fn, _ := frameFunc(f)
	if fn == nil {
		return false
	}
	for _, p := range prefixes {
		if strings.HasPrefix(fn.Name(), p) {
			return true
		}
	}
	return false
}

// trimStack removes error constructors from the top of the stack and the
// runtime and test runner from its bottom.
func trimStack(st errors.StackTrace) errors.StackTrace {
	for len(st) > 1 && frameHasPrefix(st[0], creatorFuncs...) {
		st = st[1:]
	}
	for len(st) > 1 && frameHasPrefix(st[len(st)-1], "runtime.", "testing.") {
		st = st[:len(st)-1]
	}
	return st
}

// origin returns the short file:line of a frame, with the path cut after
// "github.com/".
func origin(f errors.Frame) string {
	fn, pc := frameFunc(f)
	if fn == nil {
		return "unknown"
	}
	file, line := fn.FileLine(pc)
	if i := strings.Index(file, "github.com/"); i >= 0 {
		file = file[i+len("github.com/"):]
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// Format supports %+v to print the whole stack trace followed by the
// message and %v to print the message followed by the [file:line] where the
// error was created.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb != 'v' {
		fmt.Fprint(s, e.Error())
		return
	}
	stack := trimStack(stackTrace(e))
	switch {
	case s.Flag('+'):
		fmt.Fprintf(s, "%+v\n%s", stack, e.Error())
	case len(stack) > 0:
		fmt.Fprintf(s, "%s [%s]", e.Error(), origin(stack[0]))
	default:
		fmt.Fprint(s, e.Error())
	}
}

// stackTrace returns the first stack trace found in the chain of err, or nil.
func stackTrace(err error) errors.StackTrace {
	type tracer interface {
		StackTrace() errors.StackTrace
	}
	for err != nil {
		if t, ok := err.(tracer); ok {
			return t.StackTrace()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return nil
}
