package commands

import (
	"io"

	"github.com/iov-one/quorum/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// NewLogger returns a logger writing to w that drops messages below given
// level. Each message is tagged with the tool name.
func NewLogger(w io.Writer, tool, level string) (log.Logger, error) {
	allow, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	logger := log.NewTMLogger(log.NewSyncWriter(w)).
		With("module", tool)
	return log.NewFilter(logger, allow), nil
}
