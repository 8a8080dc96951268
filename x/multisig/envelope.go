package multisig

import (
	"encoding/json"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/sigs"
)

// Envelope holds signatures of many maintainers for the same target.
//
// Threshold is informational only. It is never used during verification,
// the verifier supplies its own policy.
type Envelope struct {
	TargetType quorum.TargetType `json:"target_type"`
	TargetHash quorum.Digest     `json:"target_hash"`
	Signatures []sigs.Entry      `json:"signatures"`
	Threshold  int               `json:"threshold,omitempty"`
	Metadata   *sigs.Metadata    `json:"metadata,omitempty"`
}

// Signed is implemented by both single and aggregated envelopes.
type Signed interface {
	Target() quorum.Subject
	Entries() []sigs.Entry
	Meta() *sigs.Metadata
}

var (
	_ Signed = (*Envelope)(nil)
	_ Signed = (*sigs.Envelope)(nil)
)

// Validate checks the structure of the envelope. It does not verify any
// signature.
func (e *Envelope) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "TargetType", e.TargetType.Validate())
	if e.Threshold < 0 {
		errs = errors.AppendField(errs, "Threshold", errors.ErrInvalidInput)
	}
	errs = errors.AppendField(errs, "Metadata", e.Metadata.Validate())

	seen := make(map[crypto.PublicKey]struct{}, len(e.Signatures))
	for _, s := range e.Signatures {
		if _, ok := seen[s.Signer]; ok {
			errs = errors.AppendField(errs, "Signatures", errors.Wrapf(errors.ErrDuplicate, "signer %s", s.Signer))
		}
		seen[s.Signer] = struct{}{}
		errs = errors.AppendField(errs, "Signatures", s.Validate())
	}
	return errs
}

func (e *Envelope) Target() quorum.Subject {
	return quorum.NewSubject(e.TargetType, e.TargetHash)
}

func (e *Envelope) Entries() []sigs.Entry {
	return e.Signatures
}

func (e *Envelope) Meta() *sigs.Metadata {
	return e.Metadata
}

// SignatureValues returns signature values of all entries.
func (e *Envelope) SignatureValues() []crypto.Signature {
	out := make([]crypto.Signature, len(e.Signatures))
	for i, s := range e.Signatures {
		out[i] = s.Signature
	}
	return out
}

// UnmarshalJSON requires the signatures field so that a single signature
// envelope is never silently read as an empty aggregate.
func (e *Envelope) UnmarshalJSON(raw []byte) error {
	type envelope Envelope
	var probe struct {
		Signatures json.RawMessage `json:"signatures"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return sigs.DecodeError(err)
	}
	if probe.Signatures == nil {
		return errors.Wrap(errors.ErrSerialization, "missing signatures")
	}
	var tmp envelope
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return sigs.DecodeError(err)
	}
	*e = Envelope(tmp)
	return nil
}
