// Package snapshot encodes and decodes lexcompat output token streams as
// CBOR, for storing "known-good" golden fixtures instead of re-deriving
// expected token lists by hand in every test, and for the check command's
// drift detection against a previously recorded run.
package snapshot

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/aledsdavies/lexcompat/tokenvariant"
)

// Snapshot is the on-disk shape: the source fingerprint that produced it
// (for staleness detection) alongside the token stream itself.
type Snapshot struct {
	SourceFingerprint string              `cbor:"fingerprint"`
	Tokens            []tokenvariant.Tuple `cbor:"tokens"`
}

// Encode serializes a Snapshot to CBOR bytes.
func Encode(s Snapshot) ([]byte, error) {
	b, err := cbor.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return b, nil
}

// Decode parses CBOR bytes produced by Encode.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: decode: %w", err)
	}
	return s, nil
}
