package multisig

import (
	"sort"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
)

// Policy is a set of maintainer keys and the number of distinct keys that
// must sign a target for it to be approved.
type Policy struct {
	threshold int
	keys      []crypto.PublicKey
}

// NewPolicy returns a policy requiring threshold signatures of given keys.
// The threshold must be in the [1, len(keys)] range and keys must be
// unique. The order of keys is preserved and defines signer indexes.
func NewPolicy(threshold int, keys []crypto.PublicKey) (*Policy, error) {
	if threshold < 1 || threshold > len(keys) {
		return nil, errors.NewThresholdError(threshold, len(keys))
	}
	seen := make(map[crypto.PublicKey]int, len(keys))
	for i, k := range keys {
		if err := k.Validate(); err != nil {
			return nil, errors.Wrapf(err, "key %d", i)
		}
		if j, ok := seen[k]; ok {
			return nil, errors.Wrapf(errors.ErrDuplicate, "keys %d and %d are the same", j, i)
		}
		seen[k] = i
	}
	cp := make([]crypto.PublicKey, len(keys))
	copy(cp, keys)
	return &Policy{threshold: threshold, keys: cp}, nil
}

// Threshold returns the number of distinct signers required.
func (p *Policy) Threshold() int {
	return p.threshold
}

// Keys returns a copy of the policy keys.
func (p *Policy) Keys() []crypto.PublicKey {
	cp := make([]crypto.PublicKey, len(p.keys))
	copy(cp, p.keys)
	return cp
}

// Len returns the number of keys.
func (p *Policy) Len() int {
	return len(p.keys)
}

// IsValidSignature returns the index of the first policy key that the
// signature verifies against.
func (p *Policy) IsValidSignature(digest quorum.Digest, sig crypto.Signature) (int, bool) {
	for i, k := range p.keys {
		if k.Verify(digest, sig) {
			return i, true
		}
	}
	return -1, false
}

// CollectValidSignatures returns the sorted indexes of policy keys that
// signed the digest. Each index is present at most once. Signatures that do
// not verify against any policy key are ignored.
func (p *Policy) CollectValidSignatures(digest quorum.Digest, sigs []crypto.Signature) []int {
	indexes, _ := p.match(digest, sigs)
	return indexes
}

// match returns the sorted, distinct indexes of policy keys that signed the
// digest and the number of signatures that matched no key.
func (p *Policy) match(digest quorum.Digest, sigs []crypto.Signature) (indexes []int, ignored int) {
	found := make(map[int]struct{}, len(sigs))
	for _, s := range sigs {
		if i, ok := p.IsValidSignature(digest, s); ok {
			found[i] = struct{}{}
		} else {
			ignored++
		}
	}
	indexes = make([]int, 0, len(found))
	for i := range found {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	return indexes, ignored
}

// Verify returns true if at least threshold distinct policy keys signed the
// digest. The order of signatures does not matter and duplicates are
// counted once.
func (p *Policy) Verify(digest quorum.Digest, sigs []crypto.Signature) bool {
	return len(p.CollectValidSignatures(digest, sigs)) >= p.threshold
}

// Require is like Verify but returns a QuorumError describing the shortfall
// if the threshold is not met.
func (p *Policy) Require(digest quorum.Digest, sigs []crypto.Signature) error {
	if got := len(p.CollectValidSignatures(digest, sigs)); got < p.threshold {
		return errors.NewQuorumError(got, p.threshold)
	}
	return nil
}
