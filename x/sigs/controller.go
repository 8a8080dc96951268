package sigs

import (
	"time"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
)

// Sign creates a signature of given subject. Metadata is optional.
func Sign(signer crypto.Signer, subject quorum.Subject, meta *Metadata, now time.Time) (*Envelope, error) {
	if err := subject.TargetType().Validate(); err != nil {
		return nil, err
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	if msg, ok := subject.(quorum.GovernanceMessage); ok {
		if err := msg.Validate(); err != nil {
			return nil, err
		}
	}

	sig := signer.Sign(quorum.SigningDigest(subject))
	return &Envelope{
		TargetType: subject.TargetType(),
		TargetHash: subject.Digest(),
		Signer:     signer.PublicKey(),
		Signature:  sig,
		Timestamp:  quorum.AsUnixTime(now),
		Metadata:   meta,
	}, nil
}

// Verify checks that the envelope approves given subject and that its
// signature was created by given public key. The signer recorded in the
// envelope is not trusted.
//
// A target type or digest difference returns ErrTargetMismatch. A signature
// that does not verify returns ErrSignatureVerification.
func Verify(env *Envelope, subject quorum.Subject, pub crypto.PublicKey) error {
	if err := CheckTarget(env.Target(), subject); err != nil {
		return err
	}
	if !pub.Verify(quorum.SigningDigest(subject), env.Signature) {
		return errors.Wrapf(errors.ErrSignatureVerification, "signer %s", pub)
	}
	return nil
}

// CheckTarget returns ErrTargetMismatch if the claimed target is not the
// expected subject.
func CheckTarget(claimed, expected quorum.Subject) error {
	if claimed.TargetType() != expected.TargetType() {
		return errors.Wrapf(errors.ErrTargetMismatch,
			"target type: want %s, got %s", expected.TargetType(), claimed.TargetType())
	}
	if claimed.Digest() != expected.Digest() {
		return errors.Wrapf(errors.ErrTargetMismatch,
			"target hash: want %s, got %s", expected.Digest(), claimed.Digest())
	}
	return nil
}

// VerifyEntry checks that the entry signature was created by the entry
// signer for given subject.
func VerifyEntry(e Entry, subject quorum.Subject) error {
	if !e.Signer.Verify(quorum.SigningDigest(subject), e.Signature) {
		return errors.Wrapf(errors.ErrSignatureVerification, "signer %s", e.Signer)
	}
	return nil
}
