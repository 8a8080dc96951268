package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Command is an independent runnable that is taking input and output being
// stdin and stdout. Given args are the command line arguments, without the
// program name and the command name, that should be parsed using the flag
// package.
//
// A command is expected to read and write only to provided input and
// output. Diagnostics go to the logger.
type Command func(input io.Reader, output io.Writer, args []string) error

// Run executes the command selected by the first command line argument and
// terminates the process. The exit code is 0 on success, 1 when
// a verification did not pass and 2 for any malformed input.
func Run(about string, commands map[string]Command) {
	program := os.Args[0]
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s %s.\n\n", program, about)
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", program)
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(commands), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", program)
		os.Exit(errors.ExitUsage)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(commands), "\n\t"))
		os.Exit(errors.ExitUsage)
	}

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	Exit(Safe(run)(os.Stdin, os.Stdout, os.Args[2:]))
}

// Safe returns a command that reports a panic of cmd as an ErrPanic instead
// of crashing.
func Safe(cmd Command) Command {
	return func(input io.Reader, output io.Writer, args []string) (err error) {
		defer errors.Recover(&err)
		return cmd(input, output, args)
	}
}

// Exit terminates the process with the exit code of given error.
func Exit(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, FormatError(err))
		if Env(EnvDebug, "") != "" {
			_, trace := errors.Info(err, true)
			fmt.Fprintln(os.Stderr, trace)
		}
	}
	os.Exit(errors.ExitCode(err))
}

func availableCmds(commands map[string]Command) []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

// CmdVersion prints the program version.
func CmdVersion(input io.Reader, output io.Writer, args []string) error {
	_, err := fmt.Fprintln(output, quorum.Version())
	return err
}
