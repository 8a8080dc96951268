package quorum

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iov-one/quorum/errors"
)

// GovernanceMessage is a structured decision that maintainers approve by
// signing it. The set of implementations is closed: Release, ModuleApproval
// and BudgetDecision.
type GovernanceMessage interface {
	Subject

	// Validate returns an error if any field of the message cannot be
	// signed.
	Validate() error

	// Description returns a short human readable summary.
	Description() string

	governanceMessage()
}

var (
	_ GovernanceMessage = (*Release)(nil)
	_ GovernanceMessage = (*ModuleApproval)(nil)
	_ GovernanceMessage = (*BudgetDecision)(nil)
)

// Release approves publishing a new version built from given commit.
type Release struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
}

func (Release) governanceMessage() {}

func (Release) TargetType() TargetType { return TargetRelease }

func (m Release) Digest() Digest { return Sum(Encode(m)) }

func (m Release) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Version", validateText(m.Version))
	errs = errors.AppendField(errs, "CommitHash", validateText(m.CommitHash))
	return errs
}

func (m Release) Description() string {
	return fmt.Sprintf("release %s (commit %s)", m.Version, m.CommitHash)
}

// ModuleApproval approves a module at a given version.
type ModuleApproval struct {
	ModuleName string `json:"module_name"`
	Version    string `json:"version"`
}

func (ModuleApproval) governanceMessage() {}

func (ModuleApproval) TargetType() TargetType { return TargetModuleApproval }

func (m ModuleApproval) Digest() Digest { return Sum(Encode(m)) }

func (m ModuleApproval) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "ModuleName", validateText(m.ModuleName))
	errs = errors.AppendField(errs, "Version", validateText(m.Version))
	return errs
}

func (m ModuleApproval) Description() string {
	return fmt.Sprintf("module %s at version %s", m.ModuleName, m.Version)
}

// BudgetDecision approves spending of an amount for a purpose. The amount
// unit is defined by the governance process and is not interpreted here.
type BudgetDecision struct {
	Amount  uint64 `json:"amount"`
	Purpose string `json:"purpose"`
}

func (BudgetDecision) governanceMessage() {}

func (BudgetDecision) TargetType() TargetType { return TargetBudgetDecision }

func (m BudgetDecision) Digest() Digest { return Sum(Encode(m)) }

func (m BudgetDecision) Validate() error {
	return errors.Field("Purpose", validateText(m.Purpose))
}

func (m BudgetDecision) Description() string {
	return fmt.Sprintf("budget of %d for %s", m.Amount, m.Purpose)
}

func validateText(s string) error {
	switch {
	case strings.TrimSpace(s) == "":
		return errors.Wrap(errors.ErrMessageFormat, "empty")
	case !utf8.ValidString(s):
		return errors.Wrap(errors.ErrMessageFormat, "not a valid UTF-8 string")
	}
	return nil
}
