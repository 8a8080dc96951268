package errors

import (
	"reflect"
	"testing"
)

func TestFieldErrors(t *testing.T) {
	// Errors are declared upfront so that the result can be compared with
	// DeepEqual.
	var (
		badSigner    = Field("Signer", ErrInvalidKey)
		dupSigner    = Field("Signer", ErrDuplicate)
		badTimestamp = Field("Timestamp", ErrInvalidState)
		badEntry     = Field("Signatures.1", Append(badSigner, Append(badTimestamp, ErrEmpty)))
		nestedSigner = Field("Signer", badSigner)
	)

	cases := map[string]struct {
		err   error
		field string
		want  []error
	}{
		"single field error": {
			err:   badSigner,
			field: "Signer",
			want:  []error{badSigner},
		},
		"two errors of the same field": {
			err:   Append(badSigner, dupSigner),
			field: "Signer",
			want:  []error{badSigner, dupSigner},
		},
		"field holding many errors": {
			err:   badEntry,
			field: "Signatures.1",
			want:  []error{badEntry},
		},
		"field found inside of another field": {
			err:   badEntry,
			field: "Timestamp",
			want:  []error{badTimestamp},
		},
		"wrapped field": {
			err:   Wrap(Wrap(badEntry, "input 0"), "aggregate"),
			field: "Signer",
			want:  []error{badSigner},
		},
		"outermost of the same field": {
			err:   nestedSigner,
			field: "Signer",
			want:  []error{nestedSigner},
		},
		"many matches in a wrapped multi error": {
			err:   Wrap(Append(Wrap(badSigner, "a"), Wrap(badTimestamp, "b"), Wrap(dupSigner, "c")), "envelope"),
			field: "Signer",
			want:  []error{badSigner, dupSigner},
		},
		"no such field": {
			err:   badEntry,
			field: "Metadata",
			want:  nil,
		},
		"not a field error": {
			err:   ErrInvalidKey,
			field: "Signer",
			want:  nil,
		},
		"nil error": {
			err:   nil,
			field: "Signer",
			want:  nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := FieldErrors(tc.err, tc.field)
			if !reflect.DeepEqual(tc.want, got) {
				t.Logf("want: %#v", tc.want)
				t.Logf(" got: %#v", got)
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestFieldError(t *testing.T) {
	if Field("Signer", nil) != nil {
		t.Fatal("nil error must not be attributed to a field")
	}

	err := Field("Signatures.0", Field("Signer", ErrInvalidKey))
	if got, want := err.Error(), "Signatures.0: Signer: invalid key"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if !ErrInvalidKey.Is(err) {
		t.Fatal("field error must keep its cause")
	}
}
