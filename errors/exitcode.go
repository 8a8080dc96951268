package errors

import "fmt"

const (
	// ExitSuccess is the process exit code of a successful run.
	ExitSuccess = 0

	// ExitFailure is returned when the input was well formed but the
	// verification did not pass: bad signature, tampered target or
	// a missing quorum.
	ExitFailure = 1

	// ExitUsage is returned for malformed input: bad keys, unreadable
	// envelopes, invalid flags or policies.
	ExitUsage = 2

	internalCode uint32 = 1
	internalLog         = "internal error"
)

// ExitCode returns the process exit code that a command line tool should
// terminate with when given error is the result of its execution.
func ExitCode(err error) int {
	if isNilErr(err) {
		return ExitSuccess
	}
	switch {
	case ErrSignatureVerification.Is(err),
		ErrTargetMismatch.Is(err),
		ErrInsufficientSignatures.Is(err):
		return ExitFailure
	default:
		return ExitUsage
	}
}

// Info returns the registered code and a message describing given error.
// Any error that does not wrap a registered root error is categorized as
// error with code 1.
// When not running in a debug mode all messages of errors that do not wrap
// a registered root error are replaced with generic "internal error".
func Info(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return 0, ""
	}

	if code := errCode(err); code != internalCode {
		if debug {
			// Try to trigger full information formatting. This
			// might produce a stacktrace.
			return code, fmt.Sprintf("%+v", err)
		}
		return code, err.Error()
	}

	if debug {
		return internalCode, fmt.Sprintf("%+v", err)
	}
	return internalCode, internalLog
}

type coder interface {
	Code() uint32
}

// errCode test if given error wraps a registered root error and returns its
// code if available. This function is testing for the causer interface as
// well and unwraps the error.
func errCode(err error) uint32 {
	if isNilErr(err) {
		return 0
	}

	for {
		if c, ok := err.(coder); ok {
			return c.Code()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalCode
		}
	}
}
