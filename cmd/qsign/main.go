/*
qsign signs release artifacts and governance decisions with a governance
key. Each signature is written as a JSON envelope that can be verified with
qverify or combined with signatures of other maintainers using qaggregate.

	$ qsign binary -key alice.key -file bitcoind -binary-type consensus -version 27.0
	$ qsign release -key alice.key -version 27.0 -commit 4d7d5f6
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
		subcommands[name] = cmdSign(kind)
	}
}

func main() {
	commands.Run("signs release artifacts and governance decisions", subcommands)
}
