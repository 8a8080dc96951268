package quorum

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestUnixTimeUnmarshal(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    UnixTime
		wantErr *errors.Error
	}{
		"seconds": {
			raw:  "1700000000",
			want: 1700000000,
		},
		"epoch": {
			raw:  "0",
			want: 0,
		},
		"RFC 3339 in UTC": {
			raw:  `"2023-11-14T22:13:20Z"`,
			want: 1700000000,
		},
		"RFC 3339 with an offset and a fraction": {
			raw:  `"2023-11-14T23:13:20.75+01:00"`,
			want: 1700000000,
		},
		"negative seconds": {
			raw:     "-5",
			wantErr: errors.ErrInvalidInput,
		},
		"date before the epoch": {
			raw:     `"1969-07-20T20:17:00Z"`,
			wantErr: errors.ErrInvalidInput,
		},
		"garbage": {
			raw:     `"yesterday"`,
			wantErr: errors.ErrInvalidInput,
		},
		"fractional seconds": {
			raw:     "17.5",
			wantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixTime
			err := json.Unmarshal([]byte(tc.raw), &got)
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnixTime(t *testing.T) {
	signed := time.Date(2023, time.November, 14, 22, 13, 20, 999, time.UTC)
	ts := AsUnixTime(signed)
	assert.Equal(t, UnixTime(1700000000), ts)
	assert.Equal(t, "2023-11-14T22:13:20Z", ts.String())
	assert.Equal(t, true, ts.Time().Equal(signed.Truncate(time.Second)))

	raw, err := json.Marshal(ts)
	assert.Nil(t, err)
	assert.Equal(t, "1700000000", string(raw))

	assert.Nil(t, ts.Validate())
	assert.IsErr(t, errors.ErrInvalidState, UnixTime(-1).Validate())
}
