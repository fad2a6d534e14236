package upstream

// Fake is a scriptable Lexer for tests: it ignores its source argument
// entirely and returns whatever Result was loaded, letting tests drive
// the reorder/heredoc/driver machinery with hand-built token sequences
// rather than a real Ruby-compatible tokenizer.
type Fake struct {
	Result Result
	Err    error
}

// NewFake returns a Fake that always yields result (and a nil error).
func NewFake(result Result) *Fake {
	return &Fake{Result: result}
}

func (f *Fake) Lex(source []byte) (Result, error) {
	return f.Result, f.Err
}

// Builder accumulates Pairs/Comments for a Fake with a fluent API,
// convenient for constructing the small token scripts most tests need.
type Builder struct {
	result Result
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Token(kind string, startOffset int, value string, state int32) *Builder {
	b.result.Tokens = append(b.result.Tokens, Pair{
		Token: Token{Kind: kind, StartOffset: startOffset, Value: []byte(value)},
		State: state,
	})
	return b
}

func (b *Builder) Comment(kind string, startOffset int, value string) *Builder {
	b.result.Comments = append(b.result.Comments, Token{Kind: kind, StartOffset: startOffset, Value: []byte(value)})
	return b
}

func (b *Builder) Error(err error) *Builder {
	b.result.Errors = append(b.result.Errors, err)
	return b
}

func (b *Builder) Warning(w string) *Builder {
	b.result.Warnings = append(b.result.Warnings, w)
	return b
}

func (b *Builder) Build() Result {
	return b.result
}

// Fake builds a ready-to-use Fake Lexer directly from the builder.
func (b *Builder) Fake() *Fake {
	return NewFake(b.Build())
}
