package multisig

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/sigs"
)

// Result describes the outcome of an envelope verification.
type Result struct {
	// Signers holds sorted indexes of policy keys that signed the target.
	Signers []int
	// Valid is the number of distinct policy keys that signed.
	Valid int
	// Ignored is the number of envelope signatures that did not match
	// any policy key.
	Ignored int
	// Threshold is the policy threshold.
	Threshold int
}

// VerifyEnvelope checks that the envelope approves given subject and that
// the policy threshold is met. Signers and threshold recorded in the
// envelope are ignored.
//
// A target difference returns ErrTargetMismatch. A shortfall returns
// a QuorumError together with the result.
func VerifyEnvelope(env *Envelope, subject quorum.Subject, policy *Policy) (*Result, error) {
	if err := sigs.CheckTarget(env.Target(), subject); err != nil {
		return nil, err
	}

	signers, ignored := policy.match(quorum.SigningDigest(subject), env.SignatureValues())
	res := &Result{
		Signers:   signers,
		Valid:     len(signers),
		Ignored:   ignored,
		Threshold: policy.Threshold(),
	}
	if res.Valid < res.Threshold {
		return res, errors.NewQuorumError(res.Valid, res.Threshold)
	}
	return res, nil
}
