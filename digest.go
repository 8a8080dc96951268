package quorum

import (
	"encoding/hex"

	"github.com/minio/sha256-simd"
)

// DigestSize is the length of a SHA-256 digest.
const DigestSize = sha256.Size

// Digest is a SHA-256 value. It is represented in JSON as a 64 characters
// long lower case hex string.
type Digest [DigestSize]byte

// Sum returns the SHA-256 digest of given data.
func Sum(data []byte) Digest {
	return Digest(sha256.Sum256(data))
}

// ParseDigest decodes a hex encoded digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	raw, err := DecodeHex(s, DigestSize)
	if err != nil {
		return d, err
	}
	copy(d[:], raw)
	return d, nil
}

// IsZero returns true if no byte of the digest is set.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

func (d Digest) MarshalJSON() ([]byte, error) {
	return MarshalHex(d[:])
}

func (d *Digest) UnmarshalJSON(raw []byte) error {
	return UnmarshalHex(d[:], raw)
}
