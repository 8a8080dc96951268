package commands

import (
	"os"

	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/multisig"
	"gopkg.in/yaml.v3"
)

// PolicyFile is the on disk representation of a multisig policy. Both YAML
// and JSON documents are accepted.
type PolicyFile struct {
	Threshold  int      `yaml:"threshold"`
	PublicKeys []string `yaml:"public_keys"`
}

// Policy builds the multisig policy described by the file.
func (pf *PolicyFile) Policy() (*multisig.Policy, error) {
	return PolicyFromKeys(pf.Threshold, 0, pf.PublicKeys)
}

// ReadPolicyFile loads a multisig policy from given path.
func ReadPolicyFile(path string) (*multisig.Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "policy file %q", path)
		}
		return nil, errors.Wrapf(err, "read %q", path)
	}

	var pf PolicyFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, errors.Wrapf(errors.ErrSerialization, "policy file %q: %s", path, err)
	}
	p, err := pf.Policy()
	if err != nil {
		return nil, errors.Wrapf(err, "policy file %q", path)
	}
	return p, nil
}

// PolicyFromKeys builds a policy of public keys given as hex strings or key
// file paths, see ParsePublicKeyArg. A non zero total must match the number
// of keys.
func PolicyFromKeys(threshold, total int, keys []string) (*multisig.Policy, error) {
	if total != 0 && total != len(keys) {
		return nil, errors.Wrapf(errors.ErrInvalidThreshold, "expected %d public keys, got %d", total, len(keys))
	}
	pubs := make([]crypto.PublicKey, len(keys))
	for i, k := range keys {
		pub, err := ParsePublicKeyArg(k)
		if err != nil {
			return nil, errors.Wrapf(err, "public key %d", i)
		}
		pubs[i] = pub
	}
	return multisig.NewPolicy(threshold, pubs)
}
