package heredoc

import "github.com/aledsdavies/lexcompat/tokenvariant"

// plainAccumulator buffers tokens verbatim; Flush is a no-op rewrite.
type plainAccumulator struct {
	tokens []tokenvariant.Tuple
}

func newPlainAccumulator() *plainAccumulator {
	return &plainAccumulator{}
}

func (a *plainAccumulator) Append(t tokenvariant.Tuple) {
	a.tokens = append(a.tokens, t)
}

func (a *plainAccumulator) Flush() []tokenvariant.Tuple {
	return a.tokens
}
