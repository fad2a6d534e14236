// Package lexcompat rewrites an upstream Ruby lexer's token stream into
// one that is comparable, token-for-token under a small set of documented
// relaxations, with a reference lexer's output. It never parses, never
// builds a tree, and never tracks full internal lexer state — it
// performs a single deterministic fold over the upstream token sequence.
package lexcompat

import (
	"fmt"

	"github.com/aledsdavies/lexcompat/internal/fingerprint"
	"github.com/aledsdavies/lexcompat/tokenvariant"
)

// Token is one output token. Line/Column/Event/Value/State mirror the
// reference lexer's 4-tuple shape; embedding tokenvariant.Token keeps
// this package's public surface and tokenvariant's comparison machinery
// describing the exact same data, Flavor included — a caller comparing
// Result.Tokens against a reference-produced stream (via tokenvariant.Diff
// or tokenvariant.Equal) needs the flavor attached to each token, not just
// its bare 4-tuple.
type Token struct {
	tokenvariant.Token
}

// String renders a debug form, used only by tests and the auxiliary CLI,
// never by the comparison logic itself.
func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s %q state=%d flavor=%v", t.Line, t.Column, t.Event, t.Value, t.State, t.Flavor)
}

// Comment is one upstream comment, passed through with its location
// resolved against the offset index for convenience.
type Comment struct {
	Line, Column int
	Kind         string
	Value        []byte
}

// Result is the transform's return shape: tokens plus the upstream
// lexer's comments, errors, and warnings passed through unchanged,
// alongside a fingerprint of the source that produced it.
type Result struct {
	Tokens      []Token
	Comments    []Comment
	Errors      []error
	Warnings    []string
	Fingerprint fingerprint.Digest
}

// HasErrors reports whether the upstream lexer reported any errors.
// A derived convenience view; it adds no new semantics over Errors.
func (r Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// TokenKinds returns the distinct output event tags present in Tokens,
// in first-seen order — handy for quick test assertions without walking
// the full stream by hand.
func (r Result) TokenKinds() []string {
	seen := make(map[string]bool, len(r.Tokens))
	var kinds []string
	for _, t := range r.Tokens {
		k := string(t.Event)
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds
}
