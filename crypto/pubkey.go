package crypto

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcec"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

const (
	// PublicKeySize is the length of a compressed public key.
	PublicKeySize = btcec.PubKeyBytesLenCompressed

	// UncompressedPublicKeySize is the length of an uncompressed public
	// key.
	UncompressedPublicKeySize = btcec.PubKeyBytesLenUncompressed
)

// PublicKey is a compressed secp256k1 point. Only valid curve points can be
// created using the provided constructors. Two keys can be compared using
// the == operator.
type PublicKey [PublicKeySize]byte

// ParsePublicKey decodes a compressed (33 bytes) or an uncompressed (65
// bytes) public key.
func ParsePublicKey(raw []byte) (PublicKey, error) {
	var pub PublicKey
	switch len(raw) {
	case PublicKeySize, UncompressedPublicKeySize:
	default:
		return pub, errors.Wrapf(errors.ErrInvalidKey, "invalid public key length %d", len(raw))
	}
	key, err := btcec.ParsePubKey(raw, btcec.S256())
	if err != nil {
		return pub, errors.Wrap(errors.ErrInvalidKey, err.Error())
	}
	copy(pub[:], key.SerializeCompressed())
	return pub, nil
}

// ParsePublicKeyHex decodes a hex encoded public key in either form.
func ParsePublicKeyHex(s string) (PublicKey, error) {
	raw, err := hex.DecodeString(trimHex(s))
	if err != nil {
		return PublicKey{}, errors.Wrap(errors.ErrInvalidKey, err.Error())
	}
	return ParsePublicKey(raw)
}

// Verify returns true if the signature of given digest was created by the
// owner of this key. High S signatures are rejected.
func (pub PublicKey) Verify(digest quorum.Digest, sig Signature) bool {
	key, err := btcec.ParsePubKey(pub[:], btcec.S256())
	if err != nil {
		return false
	}
	bsig, err := sig.btcec()
	if err != nil {
		return false
	}
	if !isLowS(bsig.S) {
		return false
	}
	return bsig.Verify(digest[:], key)
}

// Uncompressed returns the 65 byte representation of this key.
func (pub PublicKey) Uncompressed() []byte {
	key, err := btcec.ParsePubKey(pub[:], btcec.S256())
	if err != nil {
		return nil
	}
	return key.SerializeUncompressed()
}

// Validate returns an error if this is not a valid curve point. A zero
// value key is never valid.
func (pub PublicKey) Validate() error {
	if _, err := btcec.ParsePubKey(pub[:], btcec.S256()); err != nil {
		return errors.Wrap(errors.ErrInvalidKey, err.Error())
	}
	return nil
}

// Compare orders keys by their compressed bytes.
func (pub PublicKey) Compare(other PublicKey) int {
	return bytes.Compare(pub[:], other[:])
}

func (pub PublicKey) String() string {
	return hex.EncodeToString(pub[:])
}

func (pub PublicKey) MarshalJSON() ([]byte, error) {
	return quorum.MarshalHex(pub[:])
}

func (pub *PublicKey) UnmarshalJSON(raw []byte) error {
	var tmp PublicKey
	if err := quorum.UnmarshalHex(tmp[:], raw); err != nil {
		return errors.Wrap(errors.ErrInvalidKey, err.Error())
	}
	if err := tmp.Validate(); err != nil {
		return err
	}
	*pub = tmp
	return nil
}

func trimHex(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), "0x")
}
