package commands

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"time"

	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/sigs"
)

// KeyFile is the on disk representation of a governance key.
type KeyFile struct {
	PublicKey crypto.PublicKey `json:"public_key"`
	SecretKey string           `json:"secret_key"`
	CreatedAt time.Time        `json:"created_at"`
}

// WriteKeyFile stores the key at given path, readable only by the owner.
// An existing file is never overwritten.
func WriteKeyFile(path string, key *crypto.PrivateKey, now time.Time) error {
	raw, err := json.MarshalIndent(KeyFile{
		PublicKey: key.PublicKey(),
		SecretKey: hex.EncodeToString(key.SecretBytes()),
		CreatedAt: now.UTC().Truncate(time.Second),
	}, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrSerialization, err.Error())
	}

	fd, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return errors.Wrapf(errors.ErrDuplicate, "key file %q already exists", path)
		}
		return errors.Wrapf(err, "create %q", path)
	}
	if _, err := fd.Write(append(raw, '\n')); err != nil {
		fd.Close()
		return errors.Wrapf(err, "write %q", path)
	}
	return errors.Wrapf(fd.Close(), "close %q", path)
}

// ReadKeyFile loads the private key stored at given path. When the file
// declares a public key, it must match the secret.
func ReadKeyFile(path string) (*crypto.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "key file %q", path)
		}
		return nil, errors.Wrapf(err, "read %q", path)
	}

	var kf KeyFile
	if err := json.Unmarshal(raw, &kf); err != nil {
		return nil, errors.Wrapf(sigs.DecodeError(err), "key file %q", path)
	}
	if kf.SecretKey == "" {
		return nil, errors.Wrapf(errors.ErrInvalidKey, "key file %q has no secret key", path)
	}
	key, err := crypto.ParsePrivateKeyHex(kf.SecretKey)
	if err != nil {
		return nil, errors.Wrapf(err, "key file %q", path)
	}
	if kf.PublicKey != (crypto.PublicKey{}) && kf.PublicKey != key.PublicKey() {
		return nil, errors.Wrapf(errors.ErrInvalidKey, "key file %q: public key does not match the secret", path)
	}
	return key, nil
}

// ReadPublicKeyFile loads the public key of a key file. Only the public_key
// attribute is decoded, so files shared without the secret are accepted.
func ReadPublicKeyFile(path string) (crypto.PublicKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return crypto.PublicKey{}, errors.Wrapf(errors.ErrNotFound, "key file %q", path)
		}
		return crypto.PublicKey{}, errors.Wrapf(err, "read %q", path)
	}

	var kf struct {
		PublicKey *crypto.PublicKey `json:"public_key"`
	}
	if err := json.Unmarshal(raw, &kf); err != nil {
		return crypto.PublicKey{}, errors.Wrapf(sigs.DecodeError(err), "key file %q", path)
	}
	if kf.PublicKey == nil {
		return crypto.PublicKey{}, errors.Wrapf(errors.ErrInvalidKey, "key file %q has no public key", path)
	}
	return *kf.PublicKey, nil
}

// ParsePublicKeyArg returns the public key given as a command line argument,
// either hex encoded or as the path of an existing key file.
func ParsePublicKeyArg(arg string) (crypto.PublicKey, error) {
	if fi, err := os.Stat(arg); err == nil && !fi.IsDir() {
		return ReadPublicKeyFile(arg)
	}
	return crypto.ParsePublicKeyHex(arg)
}
