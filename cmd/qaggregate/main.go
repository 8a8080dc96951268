/*
qaggregate combines signatures of many maintainers for the same target into
a single envelope.

	$ qaggregate -signatures alice.json,bob.json -signatures carol.json -threshold 2-of-3
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/quorum/commands"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/multisig"
)

func main() {
	commands.Exit(commands.Safe(run)(os.Stdin, os.Stdout, os.Args[1:]))
}

func run(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Combine single or aggregated signature envelopes of the same target.

Every signature is verified against its claimed signer before it is merged.
A signer is included only once. The threshold is informational, verifiers
always use their own policy.
`)
		fl.PrintDefaults()
	}
	var signaturesFl commands.ListFlag
	fl.Var(&signaturesFl, "signatures", "Comma separated signature envelope files. Can be repeated.")
	var (
		outputFl    = fl.String("output", "aggregated.json", `Path of the created envelope. Use "-" for the standard output.`)
		thresholdFl = fl.String("threshold", "", `Informational threshold, as "N" or "N-of-M".`)
		formatFl    = commands.FlagFormat(fl)
		logLevelFl  = commands.FlagLogLevel(fl)
	)
	fl.Parse(args)

	out, err := commands.NewOutput(output, *formatFl)
	if err != nil {
		return err
	}
	logger, err := commands.NewLogger(os.Stderr, "qaggregate", *logLevelFl)
	if err != nil {
		return out.Fail(err)
	}

	env, err := aggregate(input, signaturesFl, *thresholdFl)
	if err != nil {
		return out.Fail(err)
	}
	if err := commands.WriteJSON(output, *outputFl, env); err != nil {
		return out.Fail(err)
	}
	logger.Info("aggregated",
		"target", env.Target().TargetType().String(),
		"signatures", len(env.Signatures),
		"output", *outputFl)

	if *outputFl == commands.StdStream {
		return nil
	}
	return out.Print(
		fmt.Sprintf("Aggregated %d signatures of %s %s\nSaved to: %s\n",
			len(env.Signatures), env.TargetType, env.TargetHash, *outputFl),
		aggregateResult{
			Success:    true,
			Signatures: len(env.Signatures),
			Threshold:  env.Threshold,
			OutputFile: *outputFl,
		})
}

func aggregate(input io.Reader, files []string, threshold string) (*multisig.Envelope, error) {
	if len(files) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "-signatures is required")
	}

	inputs := make([]multisig.Signed, len(files))
	for i, path := range files {
		env, err := commands.ReadEnvelope(input, path)
		if err != nil {
			return nil, err
		}
		inputs[i] = env
	}

	env, err := multisig.Aggregate(inputs...)
	if err != nil {
		return nil, err
	}

	if threshold != "" {
		n, _, err := commands.ParseThreshold(threshold)
		if err != nil {
			return nil, err
		}
		env.Threshold = n
	}
	return env, nil
}

type aggregateResult struct {
	Success    bool   `json:"success"`
	Signatures int    `json:"signatures"`
	Threshold  int    `json:"threshold,omitempty"`
	OutputFile string `json:"output_file"`
}
