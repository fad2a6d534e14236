// Package fingerprint computes a short content digest of a lex input,
// used to key conformance-test caches without re-running the transform.
// It is pure ambient tooling: it never influences lex_compat's token
// output, keying lookups off a BLAKE2b digest rather than the raw value.
package fingerprint

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Size is the digest length in bytes (BLAKE2b-128).
const Size = 16

// Digest is a fixed-size BLAKE2b-128 fingerprint.
type Digest [Size]byte

// Of computes the fingerprint of source.
func Of(source []byte) Digest {
	h, err := blake2b.New(Size, nil)
	if err != nil {
		// Size is a compile-time constant within blake2b's supported
		// range; a keyless hash of this size cannot fail to construct.
		panic(fmt.Sprintf("fingerprint: unexpected blake2b error: %v", err))
	}
	h.Write(source)

	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// String renders the digest as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}
