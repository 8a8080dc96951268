package hd

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcutil/hdkeychain"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest/assert"
)

const abandon = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestSeed(t *testing.T) {
	seed, err := Seed(abandon, "TREZOR")
	assert.Nil(t, err)
	assert.Equal(t,
		"c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		hex.EncodeToString(seed))

	// Extra white spaces do not change the mnemonic.
	again, err := Seed("  "+strings.Replace(abandon, " ", "\n ", 3)+" ", "TREZOR")
	assert.Nil(t, err)
	assert.EqualBytes(t, seed, again)

	_, err = Seed(strings.Replace(abandon, "about", "abandon", 1), "")
	assert.IsErr(t, errors.ErrInvalidKey, err)
}

func TestDerive(t *testing.T) {
	key, err := Derive(abandon, "", DefaultPath)
	assert.Nil(t, err)
	assert.Equal(t, "03aaeb52dd7494c361049de67cc680e83ebcbbbdbeb13637d92cd845f70308af5e", key.PublicKey().String())

	other, err := Derive(abandon, "", "m/44'/0'/0'/0/1")
	assert.Nil(t, err)
	if key.PublicKey() == other.PublicKey() {
		t.Fatal("different paths must derive different keys")
	}

	withPass, err := Derive(abandon, "secret", DefaultPath)
	assert.Nil(t, err)
	if key.PublicKey() == withPass.PublicKey() {
		t.Fatal("passphrase must change the derived key")
	}
}

func TestNewMnemonic(t *testing.T) {
	m, err := NewMnemonic(DefaultEntropyBits)
	assert.Nil(t, err)
	assert.Equal(t, 24, len(strings.Fields(m)))

	_, err = Derive(m, "", DefaultPath)
	assert.Nil(t, err)

	_, err = NewMnemonic(100)
	assert.IsErr(t, errors.ErrInvalidInput, err)
}

func TestParsePath(t *testing.T) {
	h := uint32(hdkeychain.HardenedKeyStart)

	cases := map[string]struct {
		path    string
		want    []uint32
		wantErr *errors.Error
	}{
		"bip44 path": {
			path: "m/44'/0'/0'/0/7",
			want: []uint32{h + 44, h, h, 0, 7},
		},
		"h marks hardened": {
			path: "m/44h/1h",
			want: []uint32{h + 44, h + 1},
		},
		"master only": {
			path: "m",
			want: []uint32{},
		},
		"missing master": {
			path:    "44'/0'",
			wantErr: errors.ErrInvalidInput,
		},
		"not a number": {
			path:    "m/44'/x",
			wantErr: errors.ErrInvalidInput,
		},
		"index too big": {
			path:    "m/2147483648",
			wantErr: errors.ErrInvalidInput,
		},
		"empty component": {
			path:    "m//1",
			wantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParsePath(tc.path)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
