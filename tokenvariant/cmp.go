package tokenvariant

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// comparable is the plain, flavor-free projection of a Tuple used only to
// render a readable go-cmp diff; the pass/fail decision itself always goes
// through Equal, never through this struct's own equality.
type comparable struct {
	Line   int
	Column int
	Event  string
	Value  string
	State  State
}

func project(t Tuple) comparable {
	return comparable{
		Line:   t.Line,
		Column: t.Column,
		Event:  string(t.Event),
		Value:  string(t.Value),
		State:  t.State,
	}
}

// Diff compares got against want token-by-token under each got token's
// comparison flavor and returns a human-readable go-cmp diff for every
// mismatching pair, or "" if every token matches. Length mismatches are
// reported first and short-circuit the per-token walk.
func Diff(got []Token, want []Tuple) string {
	if len(got) != len(want) {
		return fmt.Sprintf("token count mismatch: got %d, want %d", len(got), len(want))
	}

	var sb strings.Builder
	for i := range got {
		if Equal(got[i], want[i]) {
			continue
		}
		fmt.Fprintf(&sb, "token %d mismatch (flavor %v):\n%s\n", i, got[i].Flavor,
			cmp.Diff(project(want[i]), project(got[i].Tuple)))
	}
	return sb.String()
}
