package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iov-one/quorum/errors"
)

// Format is the representation used to print a command result.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat returns the format of given name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return "", errors.Wrapf(errors.ErrInvalidInput, "output format %q, want text or json", name)
}

// Output writes command results in the selected format.
type Output struct {
	Format Format
	W      io.Writer
}

// NewOutput returns an output writing to w in a format of given name.
func NewOutput(w io.Writer, format string) (*Output, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return &Output{Format: f, W: w}, nil
}

// Print writes text when the text format is used, otherwise data serialized
// as indented JSON.
func (o *Output) Print(text string, data interface{}) error {
	if o.Format == FormatJSON {
		raw, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return errors.Wrap(errors.ErrSerialization, err.Error())
		}
		_, err = fmt.Fprintf(o.W, "%s\n", raw)
		return errors.Wrap(err, "write output")
	}
	_, err := io.WriteString(o.W, text)
	return errors.Wrap(err, "write output")
}

// Fail reports err as a JSON object when the JSON format is used, so that
// a consumer of the output always gets a document. The error is returned
// unchanged.
func (o *Output) Fail(err error) error {
	if err == nil || o.Format != FormatJSON {
		return err
	}
	_ = o.Print("", ErrorReport(err))
	return err
}

// Report is the JSON representation of a failure.
type Report struct {
	Success bool   `json:"success"`
	Code    uint32 `json:"code"`
	Error   string `json:"error"`
}

// ErrorReport describes err together with the code of its registered root
// error.
func ErrorReport(err error) Report {
	code, _ := errors.Info(err, false)
	return Report{Success: false, Code: code, Error: err.Error()}
}

// FormatError returns a single line description of err.
func FormatError(err error) string {
	code, _ := errors.Info(err, false)
	return fmt.Sprintf("Error (code %d): %s", code, err)
}
