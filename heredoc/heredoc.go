// Package heredoc implements the three heredoc accumulator strategies:
// Plain, Dash, and Dedenting. Each buffers a heredoc body's tokens from
// opener to close and rewrites them into the reference lexer's shape on
// flush.
package heredoc

import "github.com/aledsdavies/lexcompat/tokenvariant"

// Accumulator buffers a heredoc body's tokens and rewrites them on Flush.
// One Accumulator is alive from a heredoc opener token through its
// matching close token.
type Accumulator interface {
	// Append buffers one body token (including the eventual close token).
	Append(t tokenvariant.Tuple)
	// Flush returns the rewritten token stream for the whole body.
	Flush() []tokenvariant.Tuple
}

// Select picks the accumulator strategy for a heredoc opener, keyed off
// the third byte of its textual value:
//
//	"<<~..." -> dedenting
//	"<<-..." -> dash, with split = fourth byte != '
//	otherwise (plain "<<...")
func Select(openerValue []byte, tabWidth int) Accumulator {
	if len(openerValue) < 3 {
		return newPlainAccumulator()
	}
	switch openerValue[2] {
	case '~':
		return newDedentAccumulator(tabWidth)
	case '-':
		split := true
		if len(openerValue) >= 4 && openerValue[3] == '\'' {
			split = false
		}
		return newDashAccumulator(split)
	default:
		return newPlainAccumulator()
	}
}

// Stack holds accumulators for nested heredocs: multiple accumulators
// may be pending at once when heredoc openers appear before prior
// heredocs close, and they flush in opener order. Openers push in
// declaration order; body content is delivered to whichever accumulator
// upstream declared earliest and hasn't yet seen its close (the upstream
// lexer always reads bodies back in declaration order, even though later
// openers on the same triggering line are pushed before any body starts),
// so Active advances front-to-back rather than popping from the top.
type Stack struct {
	items  []Accumulator
	active int
}

// Push opens a new accumulator, appending it to the pending queue.
func (s *Stack) Push(a Accumulator) {
	s.items = append(s.items, a)
}

// Active returns the accumulator currently receiving body tokens: the
// earliest-pushed one that hasn't closed yet. Panics with a *NestingError
// if none are pending — callers only invoke this from reorder states that
// guarantee at least one open accumulator, so reaching this path means
// that guarantee was violated.
func (s *Stack) Active() Accumulator {
	if s.active >= len(s.items) {
		panic(&NestingError{Op: "Active"})
	}
	return s.items[s.active]
}

// CloseActive advances past the current accumulator, reporting whether
// every pending accumulator has now closed. Panics with a *NestingError
// under the same condition as Active.
func (s *Stack) CloseActive() (allClosed bool) {
	if s.active >= len(s.items) {
		panic(&NestingError{Op: "CloseActive"})
	}
	s.active++
	return s.active >= len(s.items)
}

// Len reports how many heredocs are currently pending (open or closed but
// not yet flushed).
func (s *Stack) Len() int {
	return len(s.items)
}

// FlushAll flushes every pending accumulator in opener (insertion) order
// and clears the stack.
func (s *Stack) FlushAll() []tokenvariant.Tuple {
	var out []tokenvariant.Tuple
	for _, a := range s.items {
		out = append(out, a.Flush()...)
	}
	s.items = s.items[:0]
	s.active = 0
	return out
}
