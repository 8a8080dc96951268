package quorum

import (
	"testing"

	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestGovernanceMessageValidation(t *testing.T) {
	cases := map[string]struct {
		msg     GovernanceMessage
		wantErr map[string]*errors.Error
	}{
		"valid release": {
			msg: Release{Version: "1.0.0", CommitHash: "abc123"},
			wantErr: map[string]*errors.Error{
				"Version":    nil,
				"CommitHash": nil,
			},
		},
		"release without a commit": {
			msg: Release{Version: "1.0.0"},
			wantErr: map[string]*errors.Error{
				"Version":    nil,
				"CommitHash": errors.ErrMessageFormat,
			},
		},
		"release with blank fields": {
			msg: Release{Version: "  ", CommitHash: "\t"},
			wantErr: map[string]*errors.Error{
				"Version":    errors.ErrMessageFormat,
				"CommitHash": errors.ErrMessageFormat,
			},
		},
		"module approval with invalid UTF-8": {
			msg: ModuleApproval{ModuleName: "mod\xff", Version: "1"},
			wantErr: map[string]*errors.Error{
				"ModuleName": errors.ErrMessageFormat,
				"Version":    nil,
			},
		},
		"valid module approval": {
			msg: ModuleApproval{ModuleName: "lightning", Version: "0.3.1"},
			wantErr: map[string]*errors.Error{
				"ModuleName": nil,
				"Version":    nil,
			},
		},
		"budget without a purpose": {
			msg: BudgetDecision{Amount: 5},
			wantErr: map[string]*errors.Error{
				"Purpose": errors.ErrMessageFormat,
			},
		},
		"zero budget is allowed": {
			msg: BudgetDecision{Amount: 0, Purpose: "placeholder"},
			wantErr: map[string]*errors.Error{
				"Purpose": nil,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, want := range tc.wantErr {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestGovernanceMessageDescription(t *testing.T) {
	cases := map[string]struct {
		msg  GovernanceMessage
		want string
	}{
		"release": {
			msg:  Release{Version: "1.0.0", CommitHash: "abc"},
			want: "release 1.0.0 (commit abc)",
		},
		"module": {
			msg:  ModuleApproval{ModuleName: "lightning", Version: "2"},
			want: "module lightning at version 2",
		},
		"budget": {
			msg:  BudgetDecision{Amount: 1000, Purpose: "audit"},
			want: "budget of 1000 for audit",
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.msg.Description())
		})
	}
}
