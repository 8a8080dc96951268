package sigs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
)

func TestSignVerify(t *testing.T) {
	key := quorumtest.NewKey()
	other := quorumtest.NewKey()
	now := time.Unix(1700000000, 0)

	binary := quorum.NewSubject(quorum.TargetBinary, quorum.Sum([]byte("binary content")))
	release := quorum.Release{Version: "1.0.0", CommitHash: "abc123"}

	cases := map[string]struct {
		signed  quorum.Subject
		checked quorum.Subject
		pub     func() crypto.PublicKey
		wantErr *errors.Error
	}{
		"binary round trip": {
			signed:  binary,
			checked: binary,
		},
		"release round trip": {
			signed:  release,
			checked: release,
		},
		"tampered binary": {
			signed:  binary,
			checked: quorum.NewSubject(quorum.TargetBinary, quorum.Sum([]byte("binary content!"))),
			wantErr: errors.ErrTargetMismatch,
		},
		"binary signature used for a checksums manifest": {
			signed:  binary,
			checked: quorum.NewSubject(quorum.TargetChecksums, binary.Digest()),
			wantErr: errors.ErrTargetMismatch,
		},
		"different release": {
			signed:  release,
			checked: quorum.Release{Version: "1.0.1", CommitHash: "abc123"},
			wantErr: errors.ErrTargetMismatch,
		},
		"wrong public key": {
			signed:  release,
			checked: release,
			pub:     func() crypto.PublicKey { return other.PublicKey() },
			wantErr: errors.ErrSignatureVerification,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			env, err := Sign(key, tc.signed, nil, now)
			require.NoError(t, err)
			require.NoError(t, env.Validate())

			assert.Equal(t, tc.signed.TargetType(), env.TargetType)
			assert.Equal(t, tc.signed.Digest(), env.TargetHash)
			assert.Equal(t, key.PublicKey(), env.Signer)
			assert.Equal(t, quorum.UnixTime(1700000000), env.Timestamp)

			pub := key.PublicKey()
			if tc.pub != nil {
				pub = tc.pub()
			}
			err = Verify(env, tc.checked, pub)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "want %s, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestVerifyIgnoresClaimedSigner(t *testing.T) {
	key := quorumtest.NewKey()
	impostor := quorumtest.NewKey()
	subject := quorum.NewSubject(quorum.TargetBundle, quorum.Sum([]byte("bundle")))

	env, err := Sign(key, subject, nil, time.Now())
	require.NoError(t, err)
	env.Signer = impostor.PublicKey()

	assert.NoError(t, Verify(env, subject, key.PublicKey()))
	err = Verify(env, subject, impostor.PublicKey())
	assert.True(t, errors.ErrSignatureVerification.Is(err))
}

func TestForgedSignature(t *testing.T) {
	key := quorumtest.NewKey()
	subject := quorum.BudgetDecision{Amount: 100, Purpose: "audit"}

	env, err := Sign(key, subject, nil, time.Now())
	require.NoError(t, err)
	env.Signature[10] ^= 0x01

	err = Verify(env, subject, key.PublicKey())
	assert.True(t, errors.ErrSignatureVerification.Is(err))
	assert.False(t, errors.ErrTargetMismatch.Is(err))
}

func TestSignRejectsInvalidInput(t *testing.T) {
	key := quorumtest.NewKey()
	now := time.Now()

	_, err := Sign(key, quorum.Release{Version: "1.0.0"}, nil, now)
	assert.True(t, errors.ErrMessageFormat.Is(err))

	_, err = Sign(key, quorum.NewSubject(quorum.TargetType(0x42), quorum.Digest{}), nil, now)
	assert.True(t, errors.ErrInvalidType.Is(err))

	subject := quorum.NewSubject(quorum.TargetBinary, quorum.Sum(nil))
	_, err = Sign(key, subject, &Metadata{BinaryType: "firmware"}, now)
	assert.True(t, errors.ErrInvalidType.Is(err))
}

func TestVerifyEntry(t *testing.T) {
	key := quorumtest.NewKey()
	subject := quorum.ModuleApproval{ModuleName: "lightning", Version: "0.1.0"}

	env, err := Sign(key, subject, nil, time.Now())
	require.NoError(t, err)

	assert.NoError(t, VerifyEntry(env.Entry(), subject))

	entry := env.Entry()
	entry.Signer = quorumtest.NewKey().PublicKey()
	assert.True(t, errors.ErrSignatureVerification.Is(VerifyEntry(entry, subject)))
}
