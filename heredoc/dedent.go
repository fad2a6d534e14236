package heredoc

import (
	"bytes"

	"github.com/aledsdavies/lexcompat/tokenkind"
	"github.com/aledsdavies/lexcompat/tokenvariant"
)

// dedentAccumulator implements the `<<~` strategy: it tracks the minimum
// common leading whitespace across the body's non-blank lines as tokens
// arrive, then rewrites the body on flush, synthesizing the on_ignored_sp
// tokens the upstream lexer never emits.
type dedentAccumulator struct {
	tabWidth int
	tokens   []tokenvariant.Tuple

	dedent         *int // nil means "no non-blank line seen yet" (+infinity)
	dedentNext     bool
	embexprBalance int
}

func newDedentAccumulator(tabWidth int) *dedentAccumulator {
	// dedent_next starts true: the heredoc body always begins at the start
	// of a line (right after the newline that ends the opener's line), so
	// its very first content line is eligible for the dedent calculation
	// exactly like every subsequent line.
	return &dedentAccumulator{tabWidth: tabWidth, dedentNext: true}
}

func (a *dedentAccumulator) Append(t tokenvariant.Tuple) {
	balance := a.embexprBalance
	switch t.Event {
	case tokenkind.EventEmbExprBeg:
		a.embexprBalance++
	case tokenkind.EventEmbExprEnd:
		a.embexprBalance--
	}

	atBalanceZero := t.Event == tokenkind.EventStringContent && balance == 0
	if atBalanceZero {
		a.observeDedent(t.Value)
	}

	a.tokens = append(a.tokens, t)
	a.dedentNext = atBalanceZero
}

// observeDedent updates the running minimum indentation from the
// non-blank, dedent-relevant lines of an incoming string-content token's
// value. Newlines are discarded for this calculation only — they still
// appear verbatim in the buffered token.
func (a *dedentAccumulator) observeDedent(value []byte) {
	lines := bytes.Split(value, []byte{'\n'})
	for i, line := range lines {
		applies := (i == 0 && a.dedentNext) || i > 0
		if !applies || len(line) == 0 {
			continue
		}
		col := tabExpand(leadingWhitespace(line), a.tabWidth)
		if a.dedent == nil || col < *a.dedent {
			v := col
			a.dedent = &v
		}
	}
}

func (a *dedentAccumulator) Flush() []tokenvariant.Tuple {
	if a.dedent == nil {
		return flushCaseA(a.tokens)
	}
	return flushCaseB(a.tokens, *a.dedent, a.tabWidth)
}

// flushCaseA handles a body where every line was blank (or absent): no
// indentation was ever observed, so nothing is stripped — the body is
// still split into one tstring_content token per physical line to match
// the reference lexer's per-line token boundaries.
func flushCaseA(tokens []tokenvariant.Tuple) []tokenvariant.Tuple {
	var out []tokenvariant.Tuple
	var counter braceCounter

	for _, t := range tokens {
		balance := counter.update(t.Event)
		if t.Event != tokenkind.EventStringContent || balance != 0 {
			out = append(out, t)
			continue
		}

		for i, seg := range splitNewlineInclusive(t.Value) {
			nt := t
			nt.Value = seg.value
			nt.Line = t.Line + i
			if i == 0 {
				nt.Column = t.Column
			} else {
				nt.Column = 0
			}
			out = append(out, nt)
		}
	}

	return out
}

// flushCaseB handles a body with a known common dedent, stripping up to
// `dedent` tab-expanded columns of leading whitespace from each line and
// emitting synthetic on_ignored_sp tokens for what it strips.
func flushCaseB(tokens []tokenvariant.Tuple, dedent, tabWidth int) []tokenvariant.Tuple {
	var out []tokenvariant.Tuple
	var counter braceCounter
	dedentNext := true // mirrors the accumulator's initial append-time value

	for _, t := range tokens {
		balance := counter.update(t.Event)
		if t.Event != tokenkind.EventStringContent || balance != 0 {
			out = append(out, t)
			dedentNext = false
			continue
		}

		segs := splitNewlineInclusive(t.Value)
		enteringDedentNext := dedentNext

		for segIdx := 0; segIdx < len(segs); segIdx++ {
			seg := segs[segIdx].value
			applies := enteringDedentNext || segIdx > 0
			line := t.Line + segIdx
			column := t.Column

			if bytes.Equal(seg, []byte{'\n'}) && applies {
				column = 0
			}

			if dedent == 0 && (!enteringDedentNext || !startsWithASCIIWhitespace(seg)) {
				rest := t.Value[segs[segIdx].offset:]
				nt := t
				nt.Value = rest
				nt.Line = line
				nt.Column = column
				out = append(out, nt)
				break
			}

			if !bytes.Equal(seg, []byte{'\n'}) && dedent > 0 && applies {
				cut := stripPrefixLen(seg, dedent, tabWidth)
				if cut > 0 {
					out = append(out, tokenvariant.Tuple{
						Line:   line,
						Column: 0,
						Event:  tokenkind.EventIgnoredSpace,
						Value:  seg[:cut],
						State:  t.State,
					})
					seg = seg[cut:]
					column = cut
				}
			}

			if len(seg) > 0 {
				nt := t
				nt.Value = seg
				nt.Line = line
				nt.Column = column
				out = append(out, nt)
			}
		}

		dedentNext = true
	}

	return out
}

// stripPrefixLen returns how many leading bytes of seg to move into an
// on_ignored_sp token: walk character-by-character accumulating the
// tab-expanded column count, stopping *before* a character would push the
// running total past dedent.
func stripPrefixLen(seg []byte, dedent, tabWidth int) int {
	deleting := 0
	cut := 0
	for cut < len(seg) {
		ch := seg[cut]
		var next int
		if ch == '\t' {
			next = deleting - (deleting % tabWidth) + tabWidth
		} else {
			next = deleting + 1
		}
		if next > dedent {
			break
		}
		deleting = next
		cut++
	}
	return cut
}

type lineSegment struct {
	value  []byte
	offset int // byte offset of value's start within the original slice
}

// splitNewlineInclusive splits value at every '\n', keeping each newline
// attached to the end of the segment that precedes it (the final segment
// has no trailing newline if value doesn't end in one).
func splitNewlineInclusive(value []byte) []lineSegment {
	var segs []lineSegment
	start := 0
	for i, b := range value {
		if b == '\n' {
			segs = append(segs, lineSegment{value: value[start : i+1], offset: start})
			start = i + 1
		}
	}
	if start < len(value) {
		segs = append(segs, lineSegment{value: value[start:], offset: start})
	}
	return segs
}

// leadingWhitespace returns the maximal prefix of line consisting of ASCII
// space/tab characters.
func leadingWhitespace(line []byte) []byte {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}

func startsWithASCIIWhitespace(seg []byte) bool {
	return len(seg) > 0 && (seg[0] == ' ' || seg[0] == '\t')
}

// tabExpand computes the tab-expanded column width of leading, a run of
// ASCII whitespace, with tab stops at multiples of tabWidth.
func tabExpand(leading []byte, tabWidth int) int {
	col := 0
	for _, ch := range leading {
		if ch == '\t' {
			col = col - (col % tabWidth) + tabWidth
		} else {
			col++
		}
	}
	return col
}
