package commands

import (
	"flag"
	"strconv"
	"strings"

	"github.com/iov-one/quorum/errors"
)

// ParseList splits a comma separated value. Items are trimmed and empty
// items are dropped.
func ParseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ParseThreshold parses either "N" or "N-of-M". Total is zero when the
// short form is used.
func ParseThreshold(s string) (threshold, total int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, errors.Wrap(errors.ErrEmpty, "threshold")
	}

	parts := strings.Split(s, "-of-")
	if len(parts) > 2 {
		return 0, 0, errors.Wrapf(errors.ErrInvalidInput, "threshold %q, want N or N-of-M", s)
	}
	threshold, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.Wrapf(errors.ErrInvalidInput, "threshold %q, want N or N-of-M", s)
	}
	if len(parts) == 2 {
		total, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, errors.Wrapf(errors.ErrInvalidInput, "threshold %q, want N or N-of-M", s)
		}
		if total < 1 || threshold > total {
			return 0, 0, errors.NewThresholdError(threshold, total)
		}
	}
	if threshold < 1 {
		return 0, 0, errors.NewThresholdError(threshold, total)
	}
	return threshold, total, nil
}

// ListFlag is a flag value collecting comma separated items. The flag can be
// given many times.
type ListFlag []string

var _ flag.Value = (*ListFlag)(nil)

func (l *ListFlag) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *ListFlag) Set(v string) error {
	*l = append(*l, ParseList(v)...)
	return nil
}

// FlagLogLevel registers the -log-level flag.
func FlagLogLevel(fl *flag.FlagSet) *string {
	return fl.String("log-level", Env(EnvLogLevel, "info"),
		"Log level: debug, info, error or none. Defaults to "+EnvLogLevel+" if set.")
}

// FlagFormat registers the -format flag.
func FlagFormat(fl *flag.FlagSet) *string {
	return fl.String("format", string(FormatText), "Output format: text or json.")
}
