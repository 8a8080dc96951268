package multisig

import (
	stderrors "errors"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest"
	"github.com/iov-one/quorum/quorumtest/assert"
	"github.com/iov-one/quorum/x/sigs"
)

func TestReleaseRequiresAllMaintainers(t *testing.T) {
	maintainers := quorumtest.Maintainers(3)
	policy, err := NewPolicy(3, quorumtest.PublicKeys(maintainers))
	assert.Nil(t, err)

	release := quorum.Release{Version: "1.0.0", CommitHash: "abc123"}
	envs := signAll(t, release, maintainers)

	partial, err := Aggregate(envs[0], envs[1])
	assert.Nil(t, err)
	res, err := VerifyEnvelope(partial, release, policy)
	var qerr *errors.QuorumError
	if !stderrors.As(err, &qerr) {
		t.Fatalf("want a quorum error, got %+v", err)
	}
	assert.Equal(t, 2, qerr.Got)
	assert.Equal(t, 3, qerr.Need)
	assert.Equal(t, "insufficient signatures: got 2, need 3", err.Error())
	assert.Equal(t, 2, res.Valid)

	full, err := Aggregate(partial, envs[2])
	assert.Nil(t, err)
	res, err = VerifyEnvelope(full, release, policy)
	assert.Nil(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Signers)
	assert.Equal(t, 3, res.Valid)
	assert.Equal(t, 0, res.Ignored)
	assert.Equal(t, 3, res.Threshold)
}

func TestVerifyEnvelope(t *testing.T) {
	maintainers := quorumtest.Maintainers(4)
	outsider := quorumtest.NewKey()
	policy, err := NewPolicy(2, quorumtest.PublicKeys(maintainers[:3]))
	assert.Nil(t, err)

	subject := quorum.NewSubject(quorum.TargetBinary, quorum.Sum([]byte("bitcoind v1")))
	envs := signAll(t, subject, maintainers)
	foreign := signAll(t, subject, []*crypto.PrivateKey{outsider})[0]

	aggregate := func(in ...Signed) *Envelope {
		env, err := Aggregate(in...)
		assert.Nil(t, err)
		return env
	}

	cases := map[string]struct {
		env         *Envelope
		subject     quorum.Subject
		wantErr     *errors.Error
		wantSigners []int
		wantIgnored int
	}{
		"threshold met": {
			env:         aggregate(envs[0], envs[2]),
			subject:     subject,
			wantSigners: []int{0, 2},
		},
		"signers outside of the policy are ignored": {
			env:         aggregate(envs[1], envs[3], foreign),
			subject:     subject,
			wantErr:     errors.ErrInsufficientSignatures,
			wantSigners: []int{1},
			wantIgnored: 2,
		},
		"claimed threshold is ignored": {
			env: func() *Envelope {
				e := aggregate(envs[0])
				e.Threshold = 1
				return e
			}(),
			subject:     subject,
			wantErr:     errors.ErrInsufficientSignatures,
			wantSigners: []int{0},
		},
		"tampered binary": {
			env:     aggregate(envs[0], envs[1]),
			subject: quorum.NewSubject(quorum.TargetBinary, quorum.Sum([]byte("bitcoind v2"))),
			wantErr: errors.ErrTargetMismatch,
		},
		"binary signatures presented for a checksums manifest": {
			env:     aggregate(envs[0], envs[1]),
			subject: quorum.NewSubject(quorum.TargetChecksums, subject.Digest()),
			wantErr: errors.ErrTargetMismatch,
		},
		"edited signature list": {
			env: func() *Envelope {
				e := aggregate(envs[0], envs[1])
				e.Signatures[1].Signature = e.Signatures[0].Signature
				return e
			}(),
			subject:     subject,
			wantErr:     errors.ErrInsufficientSignatures,
			wantSigners: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			res, err := VerifyEnvelope(tc.env, tc.subject, policy)
			assert.IsErr(t, tc.wantErr, err)
			if errors.ErrTargetMismatch.Is(err) {
				return
			}
			if tc.wantSigners != nil {
				assert.Equal(t, tc.wantSigners, res.Signers)
			}
			assert.Equal(t, tc.wantIgnored, res.Ignored)
		})
	}
}

func TestVerifyEnvelopeDoesNotTrustSignerField(t *testing.T) {
	maintainers := quorumtest.Maintainers(2)
	policy, err := NewPolicy(2, quorumtest.PublicKeys(maintainers))
	assert.Nil(t, err)

	subject := quorum.BudgetDecision{Amount: 50000, Purpose: "security audit"}
	env, err := sigs.Sign(maintainers[0], subject, nil, quorum.UnixTime(1).Time())
	assert.Nil(t, err)

	// Claim the same signature for both maintainers.
	forged := &Envelope{
		TargetType: env.TargetType,
		TargetHash: env.TargetHash,
		Signatures: []sigs.Entry{
			env.Entry(),
			{Signer: maintainers[1].PublicKey(), Signature: env.Signature},
		},
	}
	res, err := VerifyEnvelope(forged, subject, policy)
	assert.IsErr(t, errors.ErrInsufficientSignatures, err)
	assert.Equal(t, 1, res.Valid)
}

func TestVerifyEnvelopeAgreesWithPolicy(t *testing.T) {
	maintainers := quorumtest.Maintainers(4)
	policy, err := NewPolicy(3, quorumtest.PublicKeys(maintainers))
	assert.Nil(t, err)

	module := quorum.ModuleApproval{ModuleName: "lightning", Version: "0.2.0"}
	digest := quorum.SigningDigest(module)
	outsider := quorumtest.NewKey()
	stale := quorum.SigningDigest(quorum.ModuleApproval{ModuleName: "lightning", Version: "0.1.0"})

	entries := []sigs.Entry{
		{Signer: maintainers[3].PublicKey(), Signature: maintainers[3].Sign(digest)},
		{Signer: outsider.PublicKey(), Signature: outsider.Sign(digest)},
		{Signer: maintainers[0].PublicKey(), Signature: maintainers[0].Sign(stale)},
		{Signer: maintainers[1].PublicKey(), Signature: maintainers[1].Sign(digest)},
		// The same approval presented twice counts once and is not ignored.
		{Signer: maintainers[1].PublicKey(), Signature: maintainers[1].Sign(digest)},
	}
	env := &Envelope{
		TargetType: module.TargetType(),
		TargetHash: module.Digest(),
		Signatures: entries,
	}

	res, err := VerifyEnvelope(env, module, policy)
	assert.IsErr(t, errors.ErrInsufficientSignatures, err)
	assert.Equal(t, policy.CollectValidSignatures(digest, env.SignatureValues()), res.Signers)
	assert.Equal(t, []int{1, 3}, res.Signers)
	assert.Equal(t, 2, res.Valid)
	assert.Equal(t, 2, res.Ignored)
	assert.Equal(t, 3, res.Threshold)
}
