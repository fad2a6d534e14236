// Package reorder implements the three-state stream reorder machine: it
// decides, for each mapped event, whether to emit directly to the output
// stream or buffer it into the currently-open heredoc accumulator, and
// drives the flush points where buffered, rewritten heredoc bodies
// rejoin the stream.
package reorder

import (
	"bytes"
	"strconv"

	"github.com/aledsdavies/lexcompat/heredoc"
	"github.com/aledsdavies/lexcompat/tokenkind"
	"github.com/aledsdavies/lexcompat/tokenvariant"
)

// State is one of the three stream states; its lifetime is a single lex
// call.
type State int

const (
	Default State = iota
	HeredocOpened
	HeredocClosed
)

// Machine folds the reorder state machine over a stream of mapped events,
// producing the final output token sequence. Create one with New: the zero
// Machine starts in Default but has a tab width of 0, with which a
// dedenting accumulator cannot expand a tab. Feed every upstream-derived
// token except the
// final end-of-input one, which Finish takes separately.
type Machine struct {
	state    State
	stack    heredoc.Stack
	tabWidth int
	out      []tokenvariant.Tuple
}

// New creates a Machine. tabWidth is forwarded to any dedenting
// accumulators it opens.
func New(tabWidth int) *Machine {
	return &Machine{tabWidth: tabWidth}
}

// Feed processes one mapped output token according to the current state's
// transition table, generalized to a queue of pending heredocs rather
// than a single accumulator so that nested heredocs resolve in
// declaration order: a heredoc_beg is always emitted directly and pushes
// a new pending accumulator, regardless of which of the non-Default
// states the machine is already in.
func (m *Machine) Feed(t tokenvariant.Tuple) {
	if t.Event == tokenkind.EventHeredocBeg {
		m.out = append(m.out, t)
		m.stack.Push(heredoc.Select(t.Value, m.tabWidth))
		m.state = HeredocOpened
		return
	}

	switch m.state {
	case Default:
		m.out = append(m.out, t)
	case HeredocOpened, HeredocClosed:
		m.feedPending(t)
	}
}

func (m *Machine) feedPending(t tokenvariant.Tuple) {
	if m.state == HeredocClosed && triggersFlush(t) {
		m.out = append(m.out, t)
		m.out = append(m.out, m.stack.FlushAll()...)
		m.state = Default
		return
	}

	if m.state == HeredocOpened {
		m.stack.Active().Append(t)
		if t.Event == tokenkind.EventHeredocEnd {
			if m.stack.CloseActive() {
				m.state = HeredocClosed
			}
		}
		return
	}

	// HeredocClosed, not a flush trigger: an ordinary token riding along
	// the same output position as the just-closed heredoc(s).
	m.out = append(m.out, t)
}

// triggersFlush reports whether t is one of the events that, while in
// HeredocClosed, ends the triggering line and flushes every pending
// accumulator.
func triggersFlush(t tokenvariant.Tuple) bool {
	switch t.Event {
	case tokenkind.EventNewline, tokenkind.EventIgnoredNewline, tokenkind.EventComment:
		return true
	case tokenkind.EventStringContent:
		return bytes.HasSuffix(t.Value, []byte{'\n'})
	default:
		return false
	}
}

// Finish forces a flush of any accumulators still pending — reaching
// end-of-input in HeredocOpened, or HeredocClosed with unflushed
// accumulators, is tolerated rather than an error, which also covers a
// heredoc body with no trailing newline by treating end-of-input as a
// forced flush — then drops the upstream's final end-of-input token,
// since the reference lexer does not emit the end-of-file event in
// comparable form.
//
// The one exception: if eof carries a non-empty value, it is kept
// instead of dropped. An end-of-input token only has content when a
// byte-order-mark fixup has already merged leading BOM bytes into it
// (the source consisted of nothing else), and those bytes would
// otherwise vanish from the output entirely.
func (m *Machine) Finish(eof tokenvariant.Tuple) []tokenvariant.Tuple {
	if m.stack.Len() > 0 {
		m.out = append(m.out, m.stack.FlushAll()...)
		m.state = Default
	}
	if len(eof.Value) == 0 {
		return m.out
	}
	return append(m.out, eof)
}

// String is used by the auxiliary CLI and test failure messages.
func (s State) String() string {
	switch s {
	case Default:
		return "Default"
	case HeredocOpened:
		return "HeredocOpened"
	case HeredocClosed:
		return "HeredocClosed"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}
