package quorum

import (
	"encoding/json"

	"github.com/iov-one/quorum/errors"
)

// TargetType tells what kind of object a signature approves. The value of
// each type is also its tag byte in the signing payload and must never be
// changed or reused.
type TargetType uint8

const (
	TargetBinary         TargetType = 0x01
	TargetBundle         TargetType = 0x02
	TargetChecksums      TargetType = 0x03
	TargetRelease        TargetType = 0x11
	TargetModuleApproval TargetType = 0x12
	TargetBudgetDecision TargetType = 0x13
)

var targetTypeNames = map[TargetType]string{
	TargetBinary:         "binary",
	TargetBundle:         "bundle",
	TargetChecksums:      "checksums",
	TargetRelease:        "release",
	TargetModuleApproval: "module_approval",
	TargetBudgetDecision: "budget_decision",
}

// ParseTargetType returns the target type of given name.
func ParseTargetType(name string) (TargetType, error) {
	for t, n := range targetTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrInvalidType, "unknown target type %q", name)
}

// Tag returns the byte that identifies this type in the signing payload.
func (t TargetType) Tag() byte {
	return byte(t)
}

// IsArtifact returns true for types whose digest is computed over a file
// content.
func (t TargetType) IsArtifact() bool {
	switch t {
	case TargetBinary, TargetBundle, TargetChecksums:
		return true
	}
	return false
}

func (t TargetType) Validate() error {
	if _, ok := targetTypeNames[t]; !ok {
		return errors.Wrapf(errors.ErrInvalidType, "unknown target type 0x%02x", uint8(t))
	}
	return nil
}

func (t TargetType) String() string {
	if n, ok := targetTypeNames[t]; ok {
		return n
	}
	return "unknown"
}

func (t TargetType) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(t.String())
}

func (t *TargetType) UnmarshalJSON(raw []byte) error {
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return errors.Wrap(errors.ErrSerialization, "target type must be a string")
	}
	tt, err := ParseTargetType(name)
	if err != nil {
		return err
	}
	*t = tt
	return nil
}

// BinaryType is an informational label attached to the signature of
// a binary. It is not part of the signed payload.
type BinaryType string

const (
	BinaryConsensus   BinaryType = "consensus"
	BinaryProtocol    BinaryType = "protocol"
	BinaryApplication BinaryType = "application"
)

// ParseBinaryType returns the binary type of given name.
func ParseBinaryType(name string) (BinaryType, error) {
	bt := BinaryType(name)
	if err := bt.Validate(); err != nil {
		return "", err
	}
	return bt, nil
}

func (b BinaryType) Validate() error {
	switch b {
	case BinaryConsensus, BinaryProtocol, BinaryApplication:
		return nil
	}
	return errors.Wrapf(errors.ErrInvalidType, "unknown binary type %q", string(b))
}

// Subject is anything that can be signed. The pair of target type and digest
// fully identifies what a signature approves.
type Subject interface {
	TargetType() TargetType
	Digest() Digest
}

// NewSubject returns a subject with precomputed target type and digest. It is
// used for artifacts, whose digest is computed by streaming the file content,
// and when verifying a signature without the original object at hand.
func NewSubject(t TargetType, d Digest) Subject {
	return subject{t: t, d: d}
}

type subject struct {
	t TargetType
	d Digest
}

func (s subject) TargetType() TargetType { return s.t }
func (s subject) Digest() Digest         { return s.d }
