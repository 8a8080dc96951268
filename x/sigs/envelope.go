package sigs

import (
	"encoding/json"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
)

// Metadata is informational data attached to a signature. It is not part
// of the signed payload and must never be trusted.
type Metadata struct {
	BinaryType quorum.BinaryType `json:"binary_type,omitempty"`
	Version    string            `json:"version,omitempty"`
}

func (m *Metadata) Validate() error {
	if m == nil || m.BinaryType == "" {
		return nil
	}
	return errors.Field("BinaryType", m.BinaryType.Validate())
}

// Entry is a single signature of a target.
type Entry struct {
	Signer    crypto.PublicKey `json:"signer"`
	Signature crypto.Signature `json:"signature"`
	Timestamp quorum.UnixTime  `json:"timestamp"`
}

func (e Entry) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Signer", e.Signer.Validate())
	errs = errors.AppendField(errs, "Timestamp", e.Timestamp.Validate())
	return errs
}

// Envelope is a signature of a single maintainer together with the target
// it approves.
type Envelope struct {
	TargetType quorum.TargetType `json:"target_type"`
	TargetHash quorum.Digest     `json:"target_hash"`
	Signer     crypto.PublicKey  `json:"signer"`
	Signature  crypto.Signature  `json:"signature"`
	Timestamp  quorum.UnixTime   `json:"timestamp"`
	Metadata   *Metadata         `json:"metadata,omitempty"`
}

// Validate checks the structure of the envelope. It does not verify the
// signature.
func (e *Envelope) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "TargetType", e.TargetType.Validate())
	errs = errors.AppendField(errs, "Signer", e.Signer.Validate())
	errs = errors.AppendField(errs, "Timestamp", e.Timestamp.Validate())
	errs = errors.AppendField(errs, "Metadata", e.Metadata.Validate())
	return errs
}

// Entry returns the signature part of the envelope.
func (e *Envelope) Entry() Entry {
	return Entry{
		Signer:    e.Signer,
		Signature: e.Signature,
		Timestamp: e.Timestamp,
	}
}

// Entries returns the only entry of this envelope.
func (e *Envelope) Entries() []Entry {
	return []Entry{e.Entry()}
}

// Target returns the subject this envelope claims to approve.
func (e *Envelope) Target() quorum.Subject {
	return quorum.NewSubject(e.TargetType, e.TargetHash)
}

// Meta returns the informational metadata, if any.
func (e *Envelope) Meta() *Metadata {
	return e.Metadata
}

// UnmarshalJSON refuses to read an aggregated envelope as a single one.
func (e *Envelope) UnmarshalJSON(raw []byte) error {
	type envelope Envelope
	var probe struct {
		Signatures json.RawMessage `json:"signatures"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return DecodeError(err)
	}
	if probe.Signatures != nil {
		return errors.Wrap(errors.ErrSerialization, "aggregated envelope cannot be read as a single signature")
	}
	var tmp envelope
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return DecodeError(err)
	}
	*e = Envelope(tmp)
	return nil
}

// DecodeError converts a JSON decoding failure into ErrSerialization.
// Errors returned by field decoders, for example an invalid public key, are
// returned unchanged.
func DecodeError(err error) error {
	switch err.(type) {
	case *json.SyntaxError, *json.UnmarshalTypeError, *json.InvalidUnmarshalError:
		return errors.Wrap(errors.ErrSerialization, err.Error())
	}
	return err
}
