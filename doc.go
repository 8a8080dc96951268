/*

Package quorum defines the values that are signed and verified by the
governance tooling: target types, digests, governance messages and their
canonical binary encoding.

Every signature is computed over the signing digest of a Subject. The digest
is the SHA-256 of a one byte target type tag followed by the 32 byte subject
digest, so a signature produced for a binary can never be replayed as
a signature for a checksums manifest or a governance message.

Signing and verification of single envelopes lives in x/sigs, threshold
policies and aggregation in x/multisig and streaming artifact hashing in
x/artifact.

*/

package quorum
