package quorum

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// Encode returns the canonical binary representation of a governance message.
//
// The first byte is the message target type tag. It is followed by all
// message fields in a fixed order. Each field is written as a 4 byte big
// endian length followed by the field's UTF-8 bytes. Integer amounts are
// written as their decimal representation, without leading zeros.
//
// Encoding is deterministic and injective: two messages share an encoding
// only if they are equal.
func Encode(msg GovernanceMessage) []byte {
	switch m := msg.(type) {
	case Release:
		return encodeFields(m.TargetType(), m.Version, m.CommitHash)
	case *Release:
		return Encode(*m)
	case ModuleApproval:
		return encodeFields(m.TargetType(), m.ModuleName, m.Version)
	case *ModuleApproval:
		return Encode(*m)
	case BudgetDecision:
		return encodeFields(m.TargetType(), strconv.FormatUint(m.Amount, 10), m.Purpose)
	case *BudgetDecision:
		return Encode(*m)
	default:
		// Not possible as long as the interface is sealed.
		panic(fmt.Sprintf("unknown governance message type %T", msg))
	}
}

func encodeFields(t TargetType, fields ...string) []byte {
	size := 1
	for _, f := range fields {
		size += 4 + len(f)
	}
	out := make([]byte, 1, size)
	out[0] = t.Tag()
	var header [4]byte
	for _, f := range fields {
		binary.BigEndian.PutUint32(header[:], uint32(len(f)))
		out = append(out, header[:]...)
		out = append(out, f...)
	}
	return out
}

// SigningPayload returns the bytes that a signature commits to: the target
// type tag followed by the subject digest.
func SigningPayload(t TargetType, d Digest) []byte {
	payload := make([]byte, 0, 1+DigestSize)
	payload = append(payload, t.Tag())
	return append(payload, d[:]...)
}

// SigningDigest returns the SHA-256 of the signing payload of given subject.
// This is the value passed to the curve signing primitive.
func SigningDigest(s Subject) Digest {
	return Sum(SigningPayload(s.TargetType(), s.Digest()))
}
