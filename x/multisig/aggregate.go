package multisig

import (
	"sort"

	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/sigs"
)

// Aggregate merges signatures of the same target into a single envelope.
//
// All inputs must approve the same target type and hash. Each signature is
// verified against its claimed signer before it is merged. When a signer
// appears more than once, the first occurrence is kept. Signatures of the
// result are ordered by the signer key, so the result does not depend on
// the order of inputs.
//
// The threshold of the result is the first non zero threshold of aggregated
// inputs and metadata is taken from the first input.
func Aggregate(inputs ...Signed) (*Envelope, error) {
	if len(inputs) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "no signatures to aggregate")
	}

	target := inputs[0].Target()
	out := Envelope{
		TargetType: target.TargetType(),
		TargetHash: target.Digest(),
		Metadata:   inputs[0].Meta(),
	}

	seen := make(map[crypto.PublicKey]struct{})
	for i, in := range inputs {
		if err := sigs.CheckTarget(in.Target(), target); err != nil {
			return nil, errors.Wrapf(err, "input %d", i)
		}
		if env, ok := in.(*Envelope); ok && out.Threshold == 0 {
			out.Threshold = env.Threshold
		}
		for _, e := range in.Entries() {
			if err := sigs.VerifyEntry(e, target); err != nil {
				return nil, errors.Wrapf(err, "input %d", i)
			}
			if _, ok := seen[e.Signer]; ok {
				continue
			}
			seen[e.Signer] = struct{}{}
			out.Signatures = append(out.Signatures, e)
		}
	}

	sort.Slice(out.Signatures, func(i, j int) bool {
		return out.Signatures[i].Signer.Compare(out.Signatures[j].Signer) < 0
	})
	return &out, nil
}
