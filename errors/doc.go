/*
Package errors defines the root errors of quorum and the helpers to wrap them.

Every failure returned by the libraries wraps one of the registered root
errors. Its code tells a tampered artifact (ErrTargetMismatch) apart from a
forged signature (ErrSignatureVerification) and from a missing quorum
(ErrInsufficientSignatures). ExitCode maps an error to the process exit code
of the command line tools.

Create errors with ErrXyz.New("...") or Wrap(err, "...") where the failure
happens. The innermost wrap records a stack trace:

	%s  prints the message
	%v  appends a compressed [file:line] of the origin
	%+v prints the full stack trace

ThresholdError and QuorumError carry structured data. Read them with errors.As
from the standard library.

Validation of a value with many attributes collects all problems with
AppendField instead of returning on the first one.
*/
package errors
