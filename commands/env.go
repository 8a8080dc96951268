package commands

import "os"

const (
	// EnvKey is the environment variable holding the default key file path.
	EnvKey = "QUORUM_KEY"
	// EnvLogLevel is the environment variable holding the default log level.
	EnvLogLevel = "QUORUM_LOG_LEVEL"
	// EnvDebug, when set to a non empty value, makes a failing tool print
	// the stack trace of the error.
	EnvDebug = "QUORUM_DEBUG"
)

// Env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func Env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}
