package crypto

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// SecretSize is the length of a serialized secp256k1 secret scalar.
const SecretSize = 32

// Signer is the functionality we use from a private key.
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(digest quorum.Digest) Signature
	PublicKey() PublicKey
}

var _ Signer = (*PrivateKey)(nil)

// PrivateKey is a secp256k1 secret scalar together with its public point.
// The scalar cannot be modified once the key is created.
type PrivateKey struct {
	key *btcec.PrivateKey
	pub PublicKey
}

// GenerateKey returns a new private key created using a cryptographically
// secure random source.
func GenerateKey() (*PrivateKey, error) {
	key, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidKey, err.Error())
	}
	return newPrivateKey(key), nil
}

// PrivateKeyFromBytes returns the private key for given 32 byte secret. The
// secret must be a non zero value below the curve order.
func PrivateKeyFromBytes(secret []byte) (*PrivateKey, error) {
	if len(secret) != SecretSize {
		return nil, errors.Wrapf(errors.ErrInvalidKey, "secret must be %d bytes, got %d", SecretSize, len(secret))
	}
	d := new(big.Int).SetBytes(secret)
	if d.Sign() == 0 || d.Cmp(btcec.S256().N) >= 0 {
		return nil, errors.Wrap(errors.ErrInvalidKey, "secret out of the curve order range")
	}
	key, _ := btcec.PrivKeyFromBytes(btcec.S256(), secret)
	return newPrivateKey(key), nil
}

// ParsePrivateKeyHex decodes a hex encoded secret.
func ParsePrivateKeyHex(s string) (*PrivateKey, error) {
	raw, err := quorum.DecodeHex(s, SecretSize)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidKey, err.Error())
	}
	return PrivateKeyFromBytes(raw)
}

func newPrivateKey(key *btcec.PrivateKey) *PrivateKey {
	var pub PublicKey
	copy(pub[:], key.PubKey().SerializeCompressed())
	return &PrivateKey{key: key, pub: pub}
}

// Sign returns a deterministic (RFC 6979) signature of given digest. The
// returned signature always has the low S form.
func (p *PrivateKey) Sign(digest quorum.Digest) Signature {
	sig, err := p.key.Sign(digest[:])
	if err != nil {
		// Signing can fail only for an invalid private key, which
		// cannot be constructed.
		panic(fmt.Sprintf("cannot sign: %s", err))
	}
	return signatureFromBtcec(sig)
}

// PublicKey returns the corresponding PublicKey
func (p *PrivateKey) PublicKey() PublicKey {
	return p.pub
}

// SecretBytes returns a copy of the 32 byte secret scalar. It is meant only
// for persisting the key.
func (p *PrivateKey) SecretBytes() []byte {
	return p.key.Serialize()
}

// String never prints the secret.
func (p *PrivateKey) String() string {
	return fmt.Sprintf("PrivateKey(%s)", p.pub)
}
