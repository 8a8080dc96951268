package crypto

import (
	"encoding/hex"

	"github.com/btcsuite/btcutil"
	"github.com/iov-one/quorum/crypto/bech32"
)

// AddressSize is the length of an address.
const AddressSize = 20

// Address is the RIPEMD-160 of the SHA-256 of a compressed public key. It is
// a short maintainer identifier used in logs and key listings.
type Address [AddressSize]byte

// Address returns the address of this public key.
func (pub PublicKey) Address() Address {
	var a Address
	copy(a[:], btcutil.Hash160(pub[:]))
	return a
}

// AddressString returns the bech32 encoded address using given human
// readable part.
func (pub PublicKey) AddressString(hrp string) (string, error) {
	a := pub.Address()
	raw, err := bech32.Encode(hrp, a[:])
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}
