package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/iov-one/quorum/commands"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/crypto/hd"
	"github.com/iov-one/quorum/errors"
)

// seedSize is the number of seed bytes used as the secret key.
const seedSize = 32

func cmdNew(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new governance key and store it in a file.

The key is random unless a seed or a mnemonic is given. Use "-" as the
mnemonic to read it from the standard input. This command fails if the key
file already exists.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("output", commands.Env(commands.EnvKey, "governance.key"),
			"Path of the created key file. You can use "+commands.EnvKey+" environment variable to set it.")
		seedFl       = fl.String("seed", "", "Deterministic seed of at least 32 characters. Only the first 32 bytes are used.")
		mnemonicFl   = fl.String("mnemonic", "", "BIP39 mnemonic the key is derived from.")
		passphraseFl = fl.String("passphrase", "", "BIP39 passphrase, used together with -mnemonic.")
		pathFl       = fl.String("path", hd.DefaultPath, "BIP32 derivation path, used together with -mnemonic.")
		showFl       = fl.Bool("show-private", false, "Print the secret key.")
		hrpFl        = fl.String("hrp", defaultHRP, "Human readable part of the printed address.")
		formatFl     = commands.FlagFormat(fl)
		logLevelFl   = commands.FlagLogLevel(fl)
	)
	fl.Parse(args)

	out, err := commands.NewOutput(output, *formatFl)
	if err != nil {
		return err
	}
	logger, err := commands.NewLogger(os.Stderr, "qkeygen", *logLevelFl)
	if err != nil {
		return out.Fail(err)
	}

	mnemonic := *mnemonicFl
	if mnemonic == commands.StdStream {
		raw, err := ioutil.ReadAll(input)
		if err != nil {
			return out.Fail(errors.Wrap(err, "read mnemonic"))
		}
		mnemonic = string(raw)
	}

	key, err := newKey(*seedFl, mnemonic, *passphraseFl, *pathFl)
	if err != nil {
		return out.Fail(err)
	}
	if err := commands.WriteKeyFile(*keyPathFl, key, time.Now()); err != nil {
		return out.Fail(err)
	}
	logger.Info("key created", "path", *keyPathFl, "public_key", key.PublicKey().String())

	return printKey(out, key, *keyPathFl, *hrpFl, *showFl)
}

// newKey returns a key derived from the seed or the mnemonic, whichever is
// given. A random key is returned when neither is set.
func newKey(seed, mnemonic, passphrase, path string) (*crypto.PrivateKey, error) {
	switch {
	case seed != "" && mnemonic != "":
		return nil, errors.Wrap(errors.ErrInvalidInput, "-seed and -mnemonic cannot be used together")
	case seed != "":
		if len(seed) < seedSize {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "seed must be at least %d characters", seedSize)
		}
		return crypto.PrivateKeyFromBytes([]byte(seed)[:seedSize])
	case mnemonic != "":
		return hd.Derive(mnemonic, passphrase, path)
	default:
		return crypto.GenerateKey()
	}
}

type keyInfo struct {
	Success    bool   `json:"success"`
	PublicKey  string `json:"public_key"`
	Address    string `json:"address"`
	SecretKey  string `json:"secret_key,omitempty"`
	OutputFile string `json:"output_file,omitempty"`
}

func printKey(out *commands.Output, key *crypto.PrivateKey, path, hrp string, showSecret bool) error {
	pub := key.PublicKey()
	addr, err := pub.AddressString(hrp)
	if err != nil {
		return out.Fail(err)
	}
	info := keyInfo{
		Success:    true,
		PublicKey:  pub.String(),
		Address:    addr,
		OutputFile: path,
	}
	if showSecret {
		info.SecretKey = fmt.Sprintf("%x", key.SecretBytes())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Public key: %s\n", info.PublicKey)
	fmt.Fprintf(&b, "Address: %s\n", info.Address)
	if info.SecretKey != "" {
		fmt.Fprintf(&b, "Secret key: %s\n", info.SecretKey)
	}
	if info.OutputFile != "" {
		fmt.Fprintf(&b, "Saved to: %s\n", info.OutputFile)
	}
	return out.Print(b.String(), info)
}

func cmdMnemonic(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new BIP39 mnemonic and print it. Store it offline, it restores
the governance key with "qkeygen new -mnemonic".
`)
		fl.PrintDefaults()
	}
	var (
		bitsFl = fl.Int("bits", hd.DefaultEntropyBits, "Entropy size, a multiple of 32 between 128 and 256.")
	)
	fl.Parse(args)

	mnemonic, err := hd.NewMnemonic(*bitsFl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, mnemonic)
	return err
}

func cmdAddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the public key and the address of a governance key.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", commands.Env(commands.EnvKey, "governance.key"),
			"Path of the key file. You can use "+commands.EnvKey+" environment variable to set it.")
		hrpFl    = fl.String("hrp", defaultHRP, "Human readable part of the printed address.")
		formatFl = commands.FlagFormat(fl)
	)
	fl.Parse(args)

	out, err := commands.NewOutput(output, *formatFl)
	if err != nil {
		return err
	}
	key, err := commands.ReadKeyFile(*keyPathFl)
	if err != nil {
		return out.Fail(err)
	}
	return printKey(out, key, "", *hrpFl, false)
}
