/*
Package sigs implements single maintainer signing and verification.

A maintainer signs a Subject (an artifact or a governance message) and
produces an Envelope. The envelope records the target type and digest, the
signer public key, the signature and a few informational fields. Verifying
an envelope recomputes the subject digest: a digest or target type
difference is reported as ErrTargetMismatch while a signature that does
not verify is reported as ErrSignatureVerification.
*/
package sigs
