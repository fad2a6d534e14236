// Package golden holds upstream-token fixtures shared by more than one
// package's tests, so common heredoc scenarios aren't redefined per
// package. Each fixture returns a ready-to-use *upstream.Fake builder
// plus the source bytes it corresponds to.
package golden

import "github.com/aledsdavies/lexcompat/upstream"

// Fixture pairs a source buffer with the upstream token script that
// produces it, so callers can feed both straight into lexcompat.Lex.
type Fixture struct {
	Source []byte
	Tokens *upstream.Builder
}

// PlainHeredoc is the simplest heredoc shape: `<<FOO\nhi\nFOO\n`.
func PlainHeredoc() Fixture {
	return Fixture{
		Source: []byte("<<FOO\nhi\nFOO\n"),
		Tokens: upstream.NewBuilder().
			Token("tHEREDOC_BEG", 0, "<<FOO", 0).
			Token("tNL", 5, "\n", 0).
			Token("tSTRING_CONTENT", 6, "hi\n", 0).
			Token("tHEREDOC_END", 9, "FOO\n", 0).
			Token("tEOF", 13, "", 0),
	}
}

// DashHeredoc is an interpolating `<<-` heredoc whose body contains one
// backslash-newline continuation.
func DashHeredoc() Fixture {
	source := []byte("<<-FOO\nab\\\ncd\nFOO\n")
	return Fixture{
		Source: source,
		Tokens: upstream.NewBuilder().
			Token("tHEREDOC_BEG", 0, "<<-FOO", 0).
			Token("tNL", 6, "\n", 0).
			Token("tSTRING_CONTENT", 7, "ab\\\ncd\n", 0).
			Token("tHEREDOC_END", 14, "FOO\n", 0).
			Token("tEOF", 18, "", 0),
	}
}

// DedentHeredoc is a `<<~` heredoc with two unevenly indented lines and a
// common two-column dedent.
func DedentHeredoc() Fixture {
	source := []byte("<<~FOO\n  ab\n    cd\nFOO\n")
	return Fixture{
		Source: source,
		Tokens: upstream.NewBuilder().
			Token("tHEREDOC_BEG", 0, "<<~FOO", 0).
			Token("tNL", 6, "\n", 0).
			Token("tSTRING_CONTENT", 7, "  ab\n    cd\n", 0).
			Token("tHEREDOC_END", 19, "FOO\n", 0).
			Token("tEOF", 23, "", 0),
	}
}

// NestedHeredocs has two heredoc openers on one line; bodies are read
// back in declaration order even though both openers push before either
// body arrives.
func NestedHeredocs() Fixture {
	source := []byte("<<A; <<B\na-body\nA\nb-body\nB\n")
	return Fixture{
		Source: source,
		Tokens: upstream.NewBuilder().
			Token("tHEREDOC_BEG", 0, "<<A", 0).
			Token("tHEREDOC_BEG", 5, "<<B", 0).
			Token("tNL", 8, "\n", 0).
			Token("tSTRING_CONTENT", 9, "a-body\n", 0).
			Token("tHEREDOC_END", 16, "A\n", 0).
			Token("tSTRING_CONTENT", 18, "b-body\n", 0).
			Token("tHEREDOC_END", 25, "B\n", 0).
			Token("tEOF", 27, "", 0),
	}
}
