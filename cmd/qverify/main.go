/*
qverify checks that a release artifact or a governance decision is approved
by enough maintainers.

The process exits with 0 when the policy threshold is met, with 1 when the
signatures do not approve the target and with 2 when the input is malformed.

	$ qverify binary -file bitcoind -signature aggregated.json -policy maintainers.yaml
	$ qverify release -version 27.0 -commit 4d7d5f6 \
		-signature alice.json,bob.json,carol.json \
		-public-keys 02a1...,03b2...,02c3... -threshold 3-of-3
*/
package main

import (
	"github.com/iov-one/quorum/commands"
)

var subcommands = map[string]commands.Command{
	"version": commands.CmdVersion,
}

func init() {
	for name, kind := range commands.SubjectCommands {
		subcommands[name] = cmdVerify(kind)
	}
}

func main() {
	commands.Run("verifies governance signatures against a multisig policy", subcommands)
}
