package quorum

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/iov-one/quorum/errors"
)

// DecodeHex decodes a hex string of exactly size bytes. Upper and lower case
// characters as well as an optional 0x prefix are accepted.
func DecodeHex(s string, size int) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	if len(raw) != size {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "want %d bytes, got %d", size, len(raw))
	}
	return raw, nil
}

// UnmarshalHex reads a JSON string and decodes it as a hex value of exactly
// len(dst) bytes.
func UnmarshalHex(dst []byte, src []byte) error {
	var s string
	if err := json.Unmarshal(src, &s); err != nil {
		return errors.Wrap(errors.ErrSerialization, "parse string")
	}
	raw, err := DecodeHex(s, len(dst))
	if err != nil {
		return err
	}
	copy(dst, raw)
	return nil
}

// MarshalHex returns the JSON string of the lower case hex encoded value.
func MarshalHex(b []byte) ([]byte, error) {
	return json.Marshal(hex.EncodeToString(b))
}
