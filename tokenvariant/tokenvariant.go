// Package tokenvariant implements comparison-flavored equality rules:
// output tokens compare against reference-produced 4-tuples under one of
// five relaxations instead of always requiring full structural equality.
package tokenvariant

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/lexcompat/tokenkind"
)

// Flavor selects which equality rule a Token uses against a reference
// 4-tuple. The zero value is Plain.
type Flavor int

const (
	// Plain requires full 4-tuple equality.
	Plain Flavor = iota
	// EndContent (end-of-file marker) compares only the first line of value.
	EndContent
	// Comment ignores state.
	Comment
	// HeredocEnd (heredoc close) ignores state.
	HeredocEnd
	// Ident (identifier / end-of-embedded-expr in EXPR_END|EXPR_LABEL)
	// accepts state divergence tied to the EXPR_ARG_ANY family.
	Ident
	// IgnoredNewline relaxes state equality around EXPR_ARG|EXPR_LABELED.
	IgnoredNewline
)

// String is used by debug output (Token.String) and test failure messages.
func (f Flavor) String() string {
	switch f {
	case Plain:
		return "Plain"
	case EndContent:
		return "EndContent"
	case Comment:
		return "Comment"
	case HeredocEnd:
		return "HeredocEnd"
	case Ident:
		return "Ident"
	case IgnoredNewline:
		return "IgnoredNewline"
	default:
		return "Flavor(" + strconv.Itoa(int(f)) + ")"
	}
}

// Reference lexer state bits this package needs to reason about. These are
// a small, named subset of the reference's full state enum — the rest is
// don't-care and never appears here.
type State uint32

const (
	StateEndContent State = 1 << iota
	StateExprLabel
	StateExprArg
	StateLabeled
	// StateExprArgAny covers every reference state flavor that counts as
	// "some EXPR_ARG-shaped state" for the Ident relaxation: EXPR_ARG,
	// EXPR_CMDARG and similar bits the reference groups together. Modeled
	// as one bit here since this shim never distinguishes between them.
	StateExprArgAny
)

// Has reports whether s has every bit of mask set.
func (s State) Has(mask State) bool { return s&mask == mask }

// Any reports whether s has at least one bit of mask set.
func (s State) Any(mask State) bool { return s&mask != 0 }

// Tuple is the 4-tuple shape both our output tokens and the reference
// lexer's tokens share: (line, column, event, value, state). Location is
// split into Line/Column rather than a single offset so it matches the
// reference's output-token definition directly.
type Tuple struct {
	Line   int
	Column int
	Event  tokenkind.Event
	Value  []byte
	State  State
}

// Token pairs a Tuple with the comparison Flavor that governs its equality
// against a reference-produced Tuple.
type Token struct {
	Tuple
	Flavor Flavor
}

// FlavorFor returns the comparison flavor for a mapped event, given whether
// the reference side's state is currently EXPR_END|EXPR_LABEL (needed to
// select the Ident flavor for end-of-embedded-expr, which compares like a
// plain identifier only in that reference state).
func FlavorFor(event tokenkind.Event, referenceInExprEndLabel bool) Flavor {
	switch event {
	case tokenkind.EventEndContent:
		return EndContent
	case tokenkind.EventComment:
		return Comment
	case tokenkind.EventHeredocEnd:
		return HeredocEnd
	case tokenkind.EventIgnoredNewline:
		return IgnoredNewline
	case tokenkind.EventIdent, tokenkind.EventEmbExprEnd:
		if event == tokenkind.EventEmbExprEnd && !referenceInExprEndLabel {
			return Plain
		}
		return Ident
	default:
		return Plain
	}
}

// Equal reports whether got (ours) equals want (the reference's 4-tuple),
// under got's comparison flavor.
func Equal(got Token, want Tuple) bool {
	switch got.Flavor {
	case EndContent:
		return got.Line == want.Line &&
			got.Column == want.Column &&
			got.Event == want.Event &&
			firstLine(got.Value) == firstLine(want.Value) &&
			got.State == want.State

	case Comment:
		return locationEventValueEqual(got.Tuple, want)

	case HeredocEnd:
		return locationEventValueEqual(got.Tuple, want)

	case Ident:
		if !locationEventValueEqual(got.Tuple, want) {
			return false
		}
		// State is accepted if either side is EXPR_END|EXPR_LABEL, or
		// either side has any EXPR_ARG_ANY-family bit set. This encodes a
		// deliberate divergence: we track local names introduced by
		// regex named captures that the reference does not.
		gotExprEndLabel := got.State.Has(StateExprEndLabelMask())
		wantExprEndLabel := want.State.Has(StateExprEndLabelMask())
		if gotExprEndLabel || wantExprEndLabel {
			return true
		}
		if got.State.Any(StateExprArgAny) || want.State.Any(StateExprArgAny) {
			return true
		}
		return got.State == want.State

	case IgnoredNewline:
		if !locationEventValueEqual(got.Tuple, want) {
			return false
		}
		if got.State == want.State {
			return true
		}
		// The documented (buggy-looking) rule: our side being
		// EXPR_ARG|EXPR_LABELED accepts any reference-side state that
		// overlaps EXPR_ARG|EXPR_LABELED bits. The intent — matching when
		// *any* of those bits overlap — is preserved here rather than a
		// literal, operator-precedence-confused expression (`==` binds
		// tighter than `|`) that the reference implementation appears to
		// contain. We do not silently "fix" more than that: this is the
		// one relaxation, applied only when our side carries the mask.
		mask := StateExprArg | StateLabeled
		if got.State.Has(mask) && want.State.Any(mask) {
			return true
		}
		return false

	default: // Plain
		return got.Line == want.Line &&
			got.Column == want.Column &&
			got.Event == want.Event &&
			got.State == want.State &&
			bytesEqual(got.Value, want.Value)
	}
}

// StateExprEndLabelMask is the state standing for the reference's
// EXPR_END|EXPR_LABEL combination. This package models that combination
// with the single StateExprLabel bit; callers go through this function so
// the choice lives in one place.
func StateExprEndLabelMask() State {
	return StateExprLabel
}

func locationEventValueEqual(got, want Tuple) bool {
	return got.Line == want.Line &&
		got.Column == want.Column &&
		got.Event == want.Event &&
		bytesEqual(got.Value, want.Value)
}

func firstLine(value []byte) string {
	s := string(value)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func bytesEqual(a, b []byte) bool {
	return string(a) == string(b)
}
