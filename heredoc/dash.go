package heredoc

import (
	"bytes"

	"github.com/aledsdavies/lexcompat/tokenkind"
	"github.com/aledsdavies/lexcompat/tokenvariant"
)

// dashAccumulator implements the `<<-` strategy. When split is set
// (interpolating heredocs), string-content tokens are split on
// backslash-newline at flush time.
type dashAccumulator struct {
	split  bool
	tokens []tokenvariant.Tuple
}

func newDashAccumulator(split bool) *dashAccumulator {
	return &dashAccumulator{split: split}
}

func (a *dashAccumulator) Append(t tokenvariant.Tuple) {
	a.tokens = append(a.tokens, t)
}

func (a *dashAccumulator) Flush() []tokenvariant.Tuple {
	var out []tokenvariant.Tuple
	var counter braceCounter

	for _, t := range a.tokens {
		balance := counter.update(t.Event)

		if t.Event != tokenkind.EventStringContent || balance != 0 || !a.split {
			out = append(out, t)
			continue
		}

		lineOffset := 0
		for i, seg := range splitBackslashNewline(t.Value) {
			nt := t
			nt.Value = seg
			nt.Line = t.Line + lineOffset
			if i == 0 {
				nt.Column = t.Column
			} else {
				nt.Column = 0
			}
			out = append(out, nt)
			lineOffset += bytes.Count(seg, []byte{'\n'})
		}
	}

	return out
}

// splitBackslashNewline splits value on the two-byte sequence "\\\n"
// (a literal backslash followed by newline), keeping the delimiter
// attached to the end of the preceding segment — a zero-width-lookbehind
// split rather than a delimiter-consuming one.
func splitBackslashNewline(value []byte) [][]byte {
	var segments [][]byte
	start := 0
	for i := 0; i+1 < len(value); i++ {
		if value[i] == '\\' && value[i+1] == '\n' {
			segments = append(segments, value[start:i+2])
			start = i + 2
		}
	}
	if start < len(value) || len(segments) == 0 {
		segments = append(segments, value[start:])
	}
	return segments
}
