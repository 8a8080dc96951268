/*
Package commands holds the plumbing shared by the quorum command line tools:
key and envelope files, policy files, flag helpers, output formatting,
logging and metrics.

Each tool is a set of commands. A command is a function that reads from the
given input, writes its result to the given output and parses its own
arguments with the flag package. Run dispatches the command line to one of
them and terminates the process with an exit code derived from the returned
error.
*/
package commands
