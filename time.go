package quorum

import (
	"encoding/json"
	"time"

	"github.com/iov-one/quorum/errors"
)

// UnixTime is the signing time of an envelope, in seconds since the epoch.
// It is informational only and never part of the signed payload.
type UnixTime int64

// AsUnixTime truncates t to seconds.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0)
}

func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrap(errors.ErrInvalidState, "signed before the epoch")
	}
	return nil
}

// String formats the time as RFC 3339 in UTC.
func (t UnixTime) String() string {
	return t.Time().UTC().Format(time.RFC3339)
}

// UnmarshalJSON accepts a number of seconds as written by this package and an
// RFC 3339 string, which is what hand edited envelopes usually contain.
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var seconds int64
	if err := json.Unmarshal(raw, &seconds); err != nil {
		var stamp time.Time
		if err := json.Unmarshal(raw, &stamp); err != nil {
			return errors.Wrapf(errors.ErrInvalidInput, "timestamp %s is neither a number nor RFC 3339", raw)
		}
		seconds = stamp.Unix()
	}
	if seconds < 0 {
		return errors.Wrap(errors.ErrInvalidInput, "timestamp before the epoch")
	}
	*t = UnixTime(seconds)
	return nil
}
