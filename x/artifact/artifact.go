/*
Package artifact computes the digest of release artifacts: binaries,
verification bundles and checksum manifests.

Files are streamed in fixed size chunks and are never loaded into memory at
once. A checksums manifest is hashed as an opaque blob, so any byte change,
including white space, invalidates its signatures.
*/
package artifact

import (
	"context"
	"io"
	"os"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/minio/sha256-simd"
)

// DefaultChunkSize is the number of bytes read from a file at once.
const DefaultChunkSize = 1 << 20

// Target is an artifact ready to be signed or verified.
type Target struct {
	Kind quorum.TargetType
	Hash quorum.Digest
}

var _ quorum.Subject = Target{}

func (t Target) TargetType() quorum.TargetType {
	return t.Kind
}

func (t Target) Digest() quorum.Digest {
	return t.Hash
}

// Hash streams the content of given reader and returns the artifact target.
func Hash(kind quorum.TargetType, r io.Reader) (Target, error) {
	return HashContext(context.Background(), kind, r)
}

// HashContext is like Hash, but it stops reading as soon as the context is
// cancelled.
func HashContext(ctx context.Context, kind quorum.TargetType, r io.Reader) (Target, error) {
	if !kind.IsArtifact() {
		return Target{}, errors.Wrapf(errors.ErrInvalidType, "%s is not an artifact", kind)
	}

	h := sha256.New()
	buf := make([]byte, DefaultChunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return Target{}, errors.Wrap(err, "hashing cancelled")
		}
		n, err := r.Read(buf)
		if n > 0 {
			_, _ = h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Target{}, errors.Wrap(err, "read artifact")
		}
	}

	t := Target{Kind: kind}
	copy(t.Hash[:], h.Sum(nil))
	return t, nil
}

// HashFile returns the artifact target of the file found at given path.
func HashFile(ctx context.Context, kind quorum.TargetType, path string) (Target, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Target{}, errors.Wrapf(errors.ErrNotFound, "artifact %q", path)
		}
		return Target{}, errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	t, err := HashContext(ctx, kind, f)
	if err != nil {
		return Target{}, errors.Wrapf(err, "artifact %q", path)
	}
	return t, nil
}

// FromBytes returns the artifact target of an in memory content.
func FromBytes(kind quorum.TargetType, content []byte) (Target, error) {
	if !kind.IsArtifact() {
		return Target{}, errors.Wrapf(errors.ErrInvalidType, "%s is not an artifact", kind)
	}
	return Target{Kind: kind, Hash: quorum.Sum(content)}, nil
}
