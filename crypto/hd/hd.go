/*
Package hd derives maintainer keys from a BIP39 mnemonic along a BIP32
derivation path. This allows a maintainer to restore a governance key from
a paper backup.
*/
package hd

import (
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcutil/hdkeychain"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	bip39 "github.com/tyler-smith/go-bip39"
)

// DefaultPath is the BIP44 path of the first key of the first account.
const DefaultPath = "m/44'/0'/0'/0/0"

// DefaultEntropyBits produces a 24 word mnemonic.
const DefaultEntropyBits = 256

// NewMnemonic returns a new mnemonic phrase encoding given number of random
// bits. Supported sizes are multiples of 32 between 128 and 256.
func NewMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInvalidInput, "entropy of %d bits: %s", bits, err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return mnemonic, nil
}

// Seed returns the BIP39 seed of given mnemonic protected by an optional
// passphrase. The mnemonic checksum is validated.
func Seed(mnemonic, passphrase string) ([]byte, error) {
	mnemonic = normalize(mnemonic)
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.Wrap(errors.ErrInvalidKey, "invalid mnemonic")
	}
	return bip39.NewSeed(mnemonic, passphrase), nil
}

// Derive returns the private key found at the path of the key tree created
// from given mnemonic.
func Derive(mnemonic, passphrase, path string) (*crypto.PrivateKey, error) {
	seed, err := Seed(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	return DeriveFromSeed(seed, path)
}

// DeriveFromSeed returns the private key found at the path of the key tree
// created from given seed.
func DeriveFromSeed(seed []byte, path string) (*crypto.PrivateKey, error) {
	indexes, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidKey, err.Error())
	}
	for _, i := range indexes {
		if key, err = key.Child(i); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidKey, "child %d: %s", i, err)
		}
	}
	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidKey, err.Error())
	}
	return crypto.PrivateKeyFromBytes(priv.Serialize())
}

// ParsePath returns child indexes of a derivation path such as
// m/44'/0'/0'/0/0. Hardened components are marked with ' or h.
func ParsePath(path string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "path %q must start with m", path)
	}
	indexes := make([]uint32, 0, len(parts)-1)
	for _, p := range parts[1:] {
		var offset uint32
		if strings.HasSuffix(p, "'") || strings.HasSuffix(p, "h") {
			offset = hdkeychain.HardenedKeyStart
			p = p[:len(p)-1]
		}
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil || uint32(n) >= hdkeychain.HardenedKeyStart {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "invalid path component %q", p)
		}
		indexes = append(indexes, uint32(n)+offset)
	}
	return indexes, nil
}

func normalize(mnemonic string) string {
	return strings.Join(strings.Fields(mnemonic), " ")
}
