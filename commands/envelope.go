package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/multisig"
	"github.com/iov-one/quorum/x/sigs"
)

// StdStream is the file name that stands for the standard input or output.
const StdStream = "-"

// DecodeEnvelope reads either a single signature envelope or an aggregated
// one. An aggregated envelope is recognized by its signatures list.
func DecodeEnvelope(r io.Reader) (multisig.Signed, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read envelope")
	}

	var probe struct {
		Signatures json.RawMessage `json:"signatures"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, sigs.DecodeError(err)
	}

	if probe.Signatures != nil {
		var env multisig.Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, sigs.DecodeError(err)
		}
		if err := env.Validate(); err != nil {
			return nil, errors.Wrap(err, "aggregated envelope")
		}
		return &env, nil
	}

	var env sigs.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, sigs.DecodeError(err)
	}
	if err := env.Validate(); err != nil {
		return nil, errors.Wrap(err, "envelope")
	}
	return &env, nil
}

// ReadEnvelope decodes the envelope file found at given path. StdStream
// reads from input.
func ReadEnvelope(input io.Reader, path string) (multisig.Signed, error) {
	if path == StdStream {
		return DecodeEnvelope(input)
	}

	fd, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "signature file %q", path)
		}
		return nil, errors.Wrapf(err, "open %q", path)
	}
	defer fd.Close()

	env, err := DecodeEnvelope(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "signature file %q", path)
	}
	return env, nil
}

// WriteJSON serializes v as indented JSON into the file at given path.
// StdStream writes to output.
func WriteJSON(output io.Writer, path string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrSerialization, err.Error())
	}
	raw = append(raw, '\n')

	if path == StdStream {
		_, err := io.Copy(output, bytes.NewReader(raw))
		return errors.Wrap(err, "write output")
	}
	return errors.Wrapf(os.WriteFile(path, raw, 0644), "write %q", path)
}
