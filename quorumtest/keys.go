/*
Package quorumtest provides fixtures shared by tests of all quorum packages.
*/
package quorumtest

import (
	"encoding/binary"
	"sort"

	"github.com/iov-one/quorum/crypto"
	"github.com/minio/sha256-simd"
)

// NewKey returns a new random private key.
func NewKey() *crypto.PrivateKey {
	key, err := crypto.GenerateKey()
	if err != nil {
		panic(err)
	}
	return key
}

// SeededKey returns a private key derived from given seed number. The same
// seed always produces the same key, which allows to build stable test
// vectors.
func SeededKey(seed uint32) *crypto.PrivateKey {
	var raw [4]byte
	binary.BigEndian.PutUint32(raw[:], seed)
	secret := sha256.Sum256(append([]byte("quorumtest"), raw[:]...))
	key, err := crypto.PrivateKeyFromBytes(secret[:])
	if err != nil {
		panic(err)
	}
	return key
}

// Maintainers returns n deterministic keys, ordered by their public key
// bytes.
func Maintainers(n int) []*crypto.PrivateKey {
	keys := make([]*crypto.PrivateKey, n)
	for i := range keys {
		keys[i] = SeededKey(uint32(i + 1))
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].PublicKey().Compare(keys[j].PublicKey()) < 0
	})
	return keys
}

// PublicKeys returns the public keys of given private keys, preserving the
// order.
func PublicKeys(keys []*crypto.PrivateKey) []crypto.PublicKey {
	pubs := make([]crypto.PublicKey, len(keys))
	for i, k := range keys {
		pubs[i] = k.PublicKey()
	}
	return pubs
}
