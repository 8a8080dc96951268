package crypto

import (
	"encoding/hex"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// SignatureSize is the length of a compact signature.
const SignatureSize = 64

// Signature is a compact ECDSA signature: 32 bytes of R followed by 32 bytes
// of S, both big endian.
type Signature [SignatureSize]byte

var halfOrder = new(big.Int).Rsh(btcec.S256().N, 1)

// ParseSignature decodes a compact signature. Both scalars must be in the
// [1, N-1] range.
func ParseSignature(raw []byte) (Signature, error) {
	var sig Signature
	if len(raw) != SignatureSize {
		return sig, errors.Wrapf(errors.ErrInvalidSignatureFormat, "want %d bytes, got %d", SignatureSize, len(raw))
	}
	copy(sig[:], raw)
	if _, err := sig.btcec(); err != nil {
		return Signature{}, err
	}
	return sig, nil
}

// ParseSignatureHex decodes a hex encoded compact signature.
func ParseSignatureHex(s string) (Signature, error) {
	raw, err := hex.DecodeString(trimHex(s))
	if err != nil {
		return Signature{}, errors.Wrap(errors.ErrInvalidSignatureFormat, err.Error())
	}
	return ParseSignature(raw)
}

// ParseDERSignature decodes a DER encoded signature into its compact form.
func ParseDERSignature(der []byte) (Signature, error) {
	sig, err := btcec.ParseDERSignature(der, btcec.S256())
	if err != nil {
		return Signature{}, errors.Wrap(errors.ErrInvalidSignatureFormat, err.Error())
	}
	return signatureFromBtcec(sig), nil
}

// DER returns the DER encoding of this signature.
func (s Signature) DER() ([]byte, error) {
	sig, err := s.btcec()
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}

// IsLowS returns true if S is not greater than half of the curve order.
func (s Signature) IsLowS() bool {
	return isLowS(new(big.Int).SetBytes(s[32:]))
}

func (s Signature) btcec() (*btcec.Signature, error) {
	r := new(big.Int).SetBytes(s[:32])
	ss := new(big.Int).SetBytes(s[32:])
	n := btcec.S256().N
	if r.Sign() == 0 || r.Cmp(n) >= 0 {
		return nil, errors.Wrap(errors.ErrInvalidSignatureFormat, "R out of range")
	}
	if ss.Sign() == 0 || ss.Cmp(n) >= 0 {
		return nil, errors.Wrap(errors.ErrInvalidSignatureFormat, "S out of range")
	}
	return &btcec.Signature{R: r, S: ss}, nil
}

func signatureFromBtcec(sig *btcec.Signature) Signature {
	var s Signature
	sig.R.FillBytes(s[:32])
	sig.S.FillBytes(s[32:])
	return s
}

func isLowS(s *big.Int) bool {
	return s.Cmp(halfOrder) <= 0
}

func (s Signature) String() string {
	return hex.EncodeToString(s[:])
}

func (s Signature) MarshalJSON() ([]byte, error) {
	return quorum.MarshalHex(s[:])
}

func (s *Signature) UnmarshalJSON(raw []byte) error {
	var tmp Signature
	if err := quorum.UnmarshalHex(tmp[:], raw); err != nil {
		return errors.Wrap(errors.ErrInvalidSignatureFormat, err.Error())
	}
	*s = tmp
	return nil
}
