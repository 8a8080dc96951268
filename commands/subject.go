package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/x/artifact"
)

// SubjectCommands maps a command name to the target type it signs or
// verifies.
var SubjectCommands = map[string]quorum.TargetType{
	"binary":    quorum.TargetBinary,
	"bundle":    quorum.TargetBundle,
	"checksums": quorum.TargetChecksums,
	"release":   quorum.TargetRelease,
	"module":    quorum.TargetModuleApproval,
	"budget":    quorum.TargetBudgetDecision,
}

// SubjectFlags are the flags describing a subject of given target type.
type SubjectFlags struct {
	kind quorum.TargetType

	file    string
	version string
	commit  string
	name    string
	purpose string
	amount  uint64
}

// NewSubjectFlags registers on fl the flags required to build a subject of
// given kind.
func NewSubjectFlags(fl *flag.FlagSet, kind quorum.TargetType) *SubjectFlags {
	s := &SubjectFlags{kind: kind}
	switch kind {
	case quorum.TargetRelease:
		fl.StringVar(&s.version, "version", "", "Released version.")
		fl.StringVar(&s.commit, "commit", "", "Commit hash the release is built from.")
	case quorum.TargetModuleApproval:
		fl.StringVar(&s.name, "name", "", "Module name.")
		fl.StringVar(&s.version, "version", "", "Module version.")
	case quorum.TargetBudgetDecision:
		fl.Uint64Var(&s.amount, "amount", 0, "Amount in satoshis.")
		fl.StringVar(&s.purpose, "purpose", "", "Purpose of the spending.")
	default:
		fl.StringVar(&s.file, "file", "", fmt.Sprintf("Path of the %s file.", kind))
	}
	return s
}

// Subject returns the subject described by the parsed flags. Artifact files
// are hashed and the hashing stops when the context is cancelled.
func (s *SubjectFlags) Subject(ctx context.Context) (quorum.Subject, error) {
	var msg quorum.GovernanceMessage
	switch s.kind {
	case quorum.TargetRelease:
		msg = quorum.Release{Version: s.version, CommitHash: s.commit}
	case quorum.TargetModuleApproval:
		msg = quorum.ModuleApproval{ModuleName: s.name, Version: s.version}
	case quorum.TargetBudgetDecision:
		msg = quorum.BudgetDecision{Amount: s.amount, Purpose: s.purpose}
	default:
		if s.file == "" {
			return nil, errors.Wrap(errors.ErrInvalidInput, "-file is required")
		}
		return artifact.HashFile(ctx, s.kind, s.file)
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return msg, nil
}

// Describe returns a human readable summary of a subject.
func Describe(s quorum.Subject) string {
	if m, ok := s.(quorum.GovernanceMessage); ok {
		return m.Description()
	}
	return fmt.Sprintf("%s %s", s.TargetType(), s.Digest())
}
