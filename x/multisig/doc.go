/*
> Multisignature (multi-signature) is a digital signature scheme which allows a group of users to sign a single document.
https://en.wikipedia.org/wiki/Multisignature

This multisig package evaluates threshold policies: a target is approved when
at least threshold distinct keys of the policy signed it.

A `Policy` is an immutable, ordered set of unique public keys with a threshold.
It is never read from a signature file, the verifier always supplies it.

Independently created signature envelopes of the same target are merged by
`Aggregate` into a single `Envelope`. Every merged signature is checked
against its claimed signer, so a forged entry cannot shadow a valid signature
of the same key. `VerifyEnvelope` checks an aggregated envelope against
a policy and reports which policy keys approved the target.

*/
package multisig
