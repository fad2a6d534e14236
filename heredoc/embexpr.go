package heredoc

import "github.com/aledsdavies/lexcompat/tokenkind"

// braceCounter tracks embedded-expression nesting depth inside a heredoc
// body. It's a shared *helper*, not shared *state*: dash flush and both
// dedenting flush cases each construct their own braceCounter and feed it
// the tokens they walk; dedenting append keeps its own running balance
// field instead.
type braceCounter struct {
	balance int
}

// update advances the counter by one token's event and returns the balance
// in effect *before* this token is applied, i.e. the balance the token
// itself is nested at (an embexpr_beg token is emitted at the outer
// balance, not the one it opens).
func (b *braceCounter) update(event tokenkind.Event) int {
	before := b.balance
	switch event {
	case tokenkind.EventEmbExprBeg:
		b.balance++
	case tokenkind.EventEmbExprEnd:
		b.balance--
	}
	return before
}
