package commands

import (
	"context"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest/assert"
)

func TestSubjectFlags(t *testing.T) {
	file := filepath.Join(t.TempDir(), "SHA256SUMS")
	require.NoError(t, os.WriteFile(file, []byte("abc"), 0644))

	cases := map[string]struct {
		command  string
		args     []string
		want     quorum.Subject
		wantDesc string
		wantErr  *errors.Error
	}{
		"release": {
			command:  "release",
			args:     []string{"-version", "1.0.0", "-commit", "abc123"},
			want:     quorum.Release{Version: "1.0.0", CommitHash: "abc123"},
			wantDesc: "release 1.0.0 (commit abc123)",
		},
		"module": {
			command:  "module",
			args:     []string{"-name", "lightning", "-version", "0.2.0"},
			want:     quorum.ModuleApproval{ModuleName: "lightning", Version: "0.2.0"},
			wantDesc: "module lightning at version 0.2.0",
		},
		"budget": {
			command:  "budget",
			args:     []string{"-amount", "50000", "-purpose", "security audit"},
			want:     quorum.BudgetDecision{Amount: 50000, Purpose: "security audit"},
			wantDesc: "budget of 50000 for security audit",
		},
		"checksums": {
			command:  "checksums",
			args:     []string{"-file", file},
			want:     quorum.NewSubject(quorum.TargetChecksums, quorum.Sum([]byte("abc"))),
			wantDesc: "checksums ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		"release without commit": {
			command: "release",
			args:    []string{"-version", "1.0.0"},
			wantErr: errors.ErrMessageFormat,
		},
		"binary without file": {
			command: "binary",
			wantErr: errors.ErrInvalidInput,
		},
		"missing binary": {
			command: "binary",
			args:    []string{"-file", file + ".missing"},
			wantErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			kind, ok := SubjectCommands[tc.command]
			if !ok {
				t.Fatalf("unknown command %q", tc.command)
			}
			fl := flag.NewFlagSet(tc.command, flag.ContinueOnError)
			fl.SetOutput(ioutil.Discard)
			sf := NewSubjectFlags(fl, kind)
			require.NoError(t, fl.Parse(tc.args))

			got, err := sf.Subject(context.Background())
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.want.TargetType(), got.TargetType())
			assert.Equal(t, tc.want.Digest(), got.Digest())
			assert.Equal(t, tc.wantDesc, Describe(got))
		})
	}
}
