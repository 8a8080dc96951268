package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/commands"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/multisig"
	"github.com/iov-one/quorum/x/sigs"
)

func cmdVerify(kind quorum.TargetType) commands.Command {
	return func(input io.Reader, output io.Writer, args []string) error {
		fl := flag.NewFlagSet("", flag.ExitOnError)
		fl.Usage = func() {
			fmt.Fprintf(flag.CommandLine.Output(), `
Verify %s signatures.

Signatures are read from one or more envelope files, either single or
aggregated. Use "-" to read an envelope from the standard input. Authorized
keys are given with exactly one of -public-key, -public-keys or -policy.
Signers and thresholds recorded in envelopes are never trusted.

With -public-key every single envelope must be signed by that key, so that
a forged signature is reported as such and not as a missing approval.
`, kind)
			fl.PrintDefaults()
		}
		subject := commands.NewSubjectFlags(fl, kind)
		var (
			signaturesFl commands.ListFlag
			publicKeysFl commands.ListFlag
		)
		fl.Var(&signaturesFl, "signature", "Comma separated signature envelope files. Can be repeated.")
		fl.Var(&publicKeysFl, "public-keys", "Comma separated authorized public keys, hex encoded or key file paths. Can be repeated.")
		var (
			publicKeyFl   = fl.String("public-key", "", "Public key of the only authorized signer, hex encoded or a key file path.")
			thresholdFl   = fl.String("threshold", "", `Required number of signatures, as "N" or "N-of-M". Used with -public-keys.`)
			policyFl      = fl.String("policy", "", "Path of a YAML or JSON policy file.")
			metricsFileFl = fl.String("metrics-file", "", "Write verification metrics to this file in the Prometheus text format.")
			formatFl      = commands.FlagFormat(fl)
			logLevelFl    = commands.FlagLogLevel(fl)
		)
		fl.Parse(args)

		out, err := commands.NewOutput(output, *formatFl)
		if err != nil {
			return err
		}
		logger, err := commands.NewLogger(os.Stderr, "qverify", *logLevelFl)
		if err != nil {
			return out.Fail(err)
		}

		metrics := commands.NewMetrics()
		res, err := verify(input, subject, signaturesFl, policySource{
			publicKey:  *publicKeyFl,
			publicKeys: publicKeysFl,
			threshold:  *thresholdFl,
			path:       *policyFl,
		})
		if res != nil {
			metrics.Observe(kind.String(), err, res.ValidSignatures, res.IgnoredSignatures)
		} else {
			metrics.Observe(kind.String(), err, 0, 0)
		}
		if *metricsFileFl != "" {
			if merr := metrics.WriteTextfile(*metricsFileFl); merr != nil {
				logger.Error("cannot write metrics", "err", merr)
			}
		}

		if res == nil {
			logger.Error("verification failed", "err", err)
			return out.Fail(err)
		}
		logger.Info("verified",
			"target", res.Description,
			"valid", res.ValidSignatures,
			"threshold", res.Threshold,
			"threshold_met", res.ThresholdMet)
		if perr := out.Print(res.text(), res); perr != nil {
			return perr
		}
		return err
	}
}

// verify runs the whole verification. The result is nil when the
// verification could not be performed.
func verify(input io.Reader, subject *commands.SubjectFlags, files []string, ps policySource) (*verifyResult, error) {
	if len(files) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "-signature is required")
	}
	policy, err := ps.policy()
	if err != nil {
		return nil, err
	}

	inputs := make([]multisig.Signed, len(files))
	for i, path := range files {
		if inputs[i], err = commands.ReadEnvelope(input, path); err != nil {
			return nil, err
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	s, err := subject.Subject(ctx)
	if err != nil {
		return nil, err
	}

	env, err := collect(s, inputs)
	if err != nil {
		return nil, err
	}
	if ps.publicKey != "" {
		if err := verifySigner(s, inputs, policy.Keys()[0]); err != nil {
			return nil, err
		}
	}
	res, err := multisig.VerifyEnvelope(env, s, policy)
	if res == nil {
		return nil, err
	}
	var missing int
	var qerr *errors.QuorumError
	if stderrors.As(err, &qerr) {
		missing = qerr.Missing()
	}

	keys := policy.Keys()
	signers := make([]string, len(res.Signers))
	for i, idx := range res.Signers {
		signers[i] = keys[idx].String()
	}
	return &verifyResult{
		Success:           err == nil,
		TargetType:        s.TargetType(),
		TargetHash:        s.Digest(),
		Description:       commands.Describe(s),
		Signers:           signers,
		ValidSignatures:   res.Valid,
		IgnoredSignatures: res.Ignored,
		Threshold:         res.Threshold,
		ThresholdMet:      err == nil,
		MissingApprovals:  missing,
	}, err
}

// collect merges signatures of all inputs into a single envelope. Every
// input must approve the expected subject. Signatures are not verified here,
// the ones that do not match a policy key are counted as ignored.
func collect(s quorum.Subject, inputs []multisig.Signed) (*multisig.Envelope, error) {
	env := &multisig.Envelope{
		TargetType: s.TargetType(),
		TargetHash: s.Digest(),
	}
	for i, in := range inputs {
		if err := sigs.CheckTarget(in.Target(), s); err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		env.Signatures = append(env.Signatures, in.Entries()...)
	}
	return env, nil
}

// verifySigner checks signatures against the only authorized key. A single
// envelope must verify with it. Entries of an aggregated envelope are
// checked only when they claim to be signed by it.
func verifySigner(s quorum.Subject, inputs []multisig.Signed, pub crypto.PublicKey) error {
	for i, in := range inputs {
		if env, ok := in.(*sigs.Envelope); ok {
			if err := sigs.Verify(env, s, pub); err != nil {
				return errors.Wrapf(err, "signature %d", i)
			}
			continue
		}
		for _, e := range in.Entries() {
			if e.Signer != pub {
				continue
			}
			if err := sigs.VerifyEntry(e, s); err != nil {
				return errors.Wrapf(err, "signature %d", i)
			}
		}
	}
	return nil
}

// policySource holds the flags that describe authorized keys.
type policySource struct {
	publicKey  string
	publicKeys []string
	threshold  string
	path       string
}

func (ps policySource) policy() (*multisig.Policy, error) {
	var given int
	for _, set := range []bool{ps.publicKey != "", len(ps.publicKeys) != 0, ps.path != ""} {
		if set {
			given++
		}
	}
	if given != 1 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "use exactly one of -public-key, -public-keys or -policy")
	}
	if ps.threshold != "" && len(ps.publicKeys) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "-threshold can be used only with -public-keys")
	}

	switch {
	case ps.publicKey != "":
		return commands.PolicyFromKeys(1, 0, []string{ps.publicKey})
	case ps.path != "":
		return commands.ReadPolicyFile(ps.path)
	default:
		if ps.threshold == "" {
			return nil, errors.Wrap(errors.ErrInvalidInput, "-threshold is required with -public-keys")
		}
		threshold, total, err := commands.ParseThreshold(ps.threshold)
		if err != nil {
			return nil, err
		}
		return commands.PolicyFromKeys(threshold, total, ps.publicKeys)
	}
}

type verifyResult struct {
	Success           bool              `json:"success"`
	TargetType        quorum.TargetType `json:"target_type"`
	TargetHash        quorum.Digest     `json:"target_hash"`
	Description       string            `json:"description"`
	Signers           []string          `json:"signers"`
	ValidSignatures   int               `json:"valid_signatures"`
	IgnoredSignatures int               `json:"ignored_signatures"`
	Threshold         int               `json:"threshold"`
	ThresholdMet      bool              `json:"threshold_met"`
	MissingApprovals  int               `json:"missing_approvals,omitempty"`
}

func (r *verifyResult) text() string {
	var b strings.Builder
	fmt.Fprintln(&b, "Verification Results")
	fmt.Fprintf(&b, "Target: %s\n", r.Description)
	fmt.Fprintf(&b, "Valid signatures: %d\n", r.ValidSignatures)
	fmt.Fprintf(&b, "Ignored signatures: %d\n", r.IgnoredSignatures)
	fmt.Fprintf(&b, "Threshold: %d\n", r.Threshold)
	fmt.Fprintf(&b, "Threshold met: %t\n", r.ThresholdMet)
	if r.MissingApprovals > 0 {
		fmt.Fprintf(&b, "Missing approvals: %d\n", r.MissingApprovals)
	}
	return b.String()
}
