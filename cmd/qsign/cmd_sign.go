package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/commands"
	"github.com/iov-one/quorum/x/sigs"
)

// now returns the signing time. Tests replace it to get stable envelopes.
var now = time.Now

var usages = map[quorum.TargetType]string{
	quorum.TargetBinary:         "Sign a binary. The file is streamed, its size is not limited.",
	quorum.TargetBundle:         "Sign a verification bundle.",
	quorum.TargetChecksums:      "Sign a checksums manifest. The file is signed byte for byte, any change\nincluding white space invalidates the signature.",
	quorum.TargetRelease:        "Sign a release of a version built from a commit.",
	quorum.TargetModuleApproval: "Sign an approval of a module version.",
	quorum.TargetBudgetDecision: "Sign a budget decision.",
}

func cmdSign(kind quorum.TargetType) commands.Command {
	return func(input io.Reader, output io.Writer, args []string) error {
		fl := flag.NewFlagSet("", flag.ExitOnError)
		fl.Usage = func() {
			fmt.Fprintf(flag.CommandLine.Output(), `
%s

A signature envelope is written to the output file. Use "-" as the output
to write the envelope to the standard output.
`, usages[kind])
			fl.PrintDefaults()
		}
		subject := commands.NewSubjectFlags(fl, kind)
		var binaryTypeFl, versionFl *string
		if kind.IsArtifact() {
			binaryTypeFl = fl.String("binary-type", "", "Informational binary type: consensus, protocol or application.")
			versionFl = fl.String("version", "", "Informational version of the artifact.")
		}
		var (
			keyPathFl = fl.String("key", commands.Env(commands.EnvKey, "governance.key"),
				"Path of the key file. You can use "+commands.EnvKey+" environment variable to set it.")
			outputFl   = fl.String("output", "signature.json", "Path of the created signature envelope.")
			formatFl   = commands.FlagFormat(fl)
			logLevelFl = commands.FlagLogLevel(fl)
		)
		fl.Parse(args)

		out, err := commands.NewOutput(output, *formatFl)
		if err != nil {
			return err
		}
		logger, err := commands.NewLogger(os.Stderr, "qsign", *logLevelFl)
		if err != nil {
			return out.Fail(err)
		}

		key, err := commands.ReadKeyFile(*keyPathFl)
		if err != nil {
			return out.Fail(err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		start := time.Now()
		s, err := subject.Subject(ctx)
		if err != nil {
			return out.Fail(err)
		}
		logger.Debug("subject ready", "target", commands.Describe(s), "took", time.Since(start))

		var meta *sigs.Metadata
		if kind.IsArtifact() && (*binaryTypeFl != "" || *versionFl != "") {
			meta = &sigs.Metadata{
				BinaryType: quorum.BinaryType(*binaryTypeFl),
				Version:    *versionFl,
			}
		}

		env, err := sigs.Sign(key, s, meta, now())
		if err != nil {
			return out.Fail(err)
		}
		if err := commands.WriteJSON(output, *outputFl, env); err != nil {
			return out.Fail(err)
		}
		logger.Info("signed", "target", commands.Describe(s), "signer", env.Signer.String(), "output", *outputFl)

		if *outputFl == commands.StdStream {
			// The envelope is the only output.
			return nil
		}
		return out.Print(
			fmt.Sprintf("Signed %s\nSigner: %s\nSignature: %s\nSaved to: %s\n",
				commands.Describe(s), env.Signer, env.Signature, *outputFl),
			signResult{
				Success:    true,
				TargetType: env.TargetType,
				TargetHash: env.TargetHash,
				Signer:     env.Signer.String(),
				Signature:  env.Signature.String(),
				OutputFile: *outputFl,
			})
	}
}

type signResult struct {
	Success    bool              `json:"success"`
	TargetType quorum.TargetType `json:"target_type"`
	TargetHash quorum.Digest     `json:"target_hash"`
	Signer     string            `json:"signer"`
	Signature  string            `json:"signature"`
	OutputFile string            `json:"output_file"`
}
