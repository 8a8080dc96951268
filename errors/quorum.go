package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// ThresholdError is returned when a multisig policy is created with
// a threshold that is not in the [1, Total] range. It is an instance of
// ErrInvalidThreshold.
type ThresholdError struct {
	Threshold int
	Total     int

	stack errors.StackTrace
}

// NewThresholdError returns an ErrInvalidThreshold instance carrying both
// the requested threshold and the number of available keys.
func NewThresholdError(threshold, total int) error {
	return &ThresholdError{
		Threshold: threshold,
		Total:     total,
		stack:     callers(),
	}
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("%s: %d of %d", ErrInvalidThreshold.desc, e.Threshold, e.Total)
}

func (e *ThresholdError) Cause() error {
	return ErrInvalidThreshold
}

func (e *ThresholdError) Unwrap() error {
	return ErrInvalidThreshold
}

func (e *ThresholdError) StackTrace() errors.StackTrace {
	return e.stack
}

// QuorumError is returned when fewer distinct authorized signers than
// required approved a target. It is an instance of
// ErrInsufficientSignatures.
type QuorumError struct {
	Got  int
	Need int

	stack errors.StackTrace
}

// NewQuorumError returns an ErrInsufficientSignatures instance that tells
// how many approvals were collected and how many are required.
func NewQuorumError(got, need int) error {
	return &QuorumError{
		Got:   got,
		Need:  need,
		stack: callers(),
	}
}

func (e *QuorumError) Error() string {
	return fmt.Sprintf("%s: got %d, need %d", ErrInsufficientSignatures.desc, e.Got, e.Need)
}

func (e *QuorumError) Cause() error {
	return ErrInsufficientSignatures
}

func (e *QuorumError) Unwrap() error {
	return ErrInsufficientSignatures
}

func (e *QuorumError) StackTrace() errors.StackTrace {
	return e.stack
}

// Missing returns how many more approvals are needed to reach the quorum.
func (e *QuorumError) Missing() int {
	return e.Need - e.Got
}

// callers returns the stack trace of the caller of the function that called
// callers.
func callers() errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}
	st := errors.New("").(stackTracer).StackTrace()
	// Skip this function and the constructor.
	if len(st) > 2 {
		return st[2:]
	}
	return st
}
