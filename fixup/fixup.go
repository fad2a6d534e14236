// Package fixup applies two small post-processing corrections that don't
// fit any of the other components: shifting a leading byte-order mark
// into the first token's value, and backfilling the state the reference
// lexer attaches to a regexp-end event.
package fixup

import (
	"bytes"

	"github.com/aledsdavies/lexcompat/tokenkind"
	"github.com/aledsdavies/lexcompat/tokenvariant"
)

// bom is the three-byte UTF-8 byte-order mark.
var bom = []byte{0xEF, 0xBB, 0xBF}

// BOMColumnShift is the column correction applied to every line-1 token
// when the source begins with a BOM: the reference lexer back-dates
// line-1 columns by six bytes for compatibility with a historical bug.
const BOMColumnShift = 6

// ApplyBOM prepends the BOM bytes to the first token's value and shifts
// every line-1 token's column back by BOMColumnShift, if source begins
// with one. tokens is mutated in place and also returned for convenience.
func ApplyBOM(source []byte, tokens []tokenvariant.Tuple) []tokenvariant.Tuple {
	if !bytes.HasPrefix(source, bom) || len(tokens) == 0 {
		return tokens
	}

	first := tokens[0].Value
	merged := make([]byte, 0, len(bom)+len(first))
	merged = append(merged, bom...)
	merged = append(merged, first...)
	tokens[0].Value = merged

	for i := range tokens {
		if tokens[i].Line == 1 {
			tokens[i].Column -= BOMColumnShift
		}
	}
	return tokens
}

// ApplyRegexpEndState backfills the state of every regexp_end event in
// tokens: the reference lexer records the state the regexp *entered*
// rather than the one it exits, so the mapped state needs patching to
// match.
//
// For a regexp_end preceded by an embexpr_end, the correct state is the
// one the upstream lexer captured at the matching embexpr_beg (found by
// scanning backward with a brace counter seeded at 1). Otherwise it's
// simply the state of the immediately preceding token.
func ApplyRegexpEndState(tokens []tokenvariant.Tuple) []tokenvariant.Tuple {
	for i, t := range tokens {
		if t.Event != tokenkind.EventRegexpEnd || i == 0 {
			continue
		}

		prev := tokens[i-1]
		if prev.Event == tokenkind.EventEmbExprEnd {
			if j, ok := matchingEmbExprBeg(tokens, i-1); ok {
				tokens[i].State = tokens[j].State
			}
			continue
		}
		tokens[i].State = prev.State
	}
	return tokens
}

// matchingEmbExprBeg scans backward from an embexpr_end at index end
// (exclusive of end itself, i.e. starting at end-1), tracking a brace
// counter seeded at 1 (embexpr_end increments, embexpr_beg decrements),
// until it returns to 0, and reports the index of the matching
// embexpr_beg. This mirrors the brace-balance counting done by the
// heredoc accumulators, but with its own independent counter — nesting
// depth must never be shared across call sites, only the counting logic.
func matchingEmbExprBeg(tokens []tokenvariant.Tuple, end int) (int, bool) {
	balance := 1
	for i := end - 1; i >= 0; i-- {
		switch tokens[i].Event {
		case tokenkind.EventEmbExprEnd:
			balance++
		case tokenkind.EventEmbExprBeg:
			balance--
			if balance == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
