/*
qkeygen creates and inspects governance keys.

	$ qkeygen new -output alice.key
	$ qkeygen mnemonic | qkeygen new -mnemonic - -output alice.key
	$ qkeygen addr -key alice.key
*/
package main

import (
	"github.com/iov-one/quorum/commands"
)

// subcommands is a register of all available commands. The name is used to
// match with the first argument given.
var subcommands = map[string]commands.Command{
	"addr":     cmdAddr,
	"mnemonic": cmdMnemonic,
	"new":      cmdNew,
	"version":  commands.CmdVersion,
}

func main() {
	commands.Run("creates governance keys", subcommands)
}

// defaultHRP is the human readable part of bech32 encoded addresses.
const defaultHRP = "gov"
