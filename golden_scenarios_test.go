package lexcompat

import (
	"testing"

	"github.com/aledsdavies/lexcompat/testing/golden"
	"github.com/aledsdavies/lexcompat/tokenkind"
)

// These exercise the shared fixtures in testing/golden/ through the full
// public driver, so more than one package's tests can rely on the same
// scripted scenarios without redefining them.

func TestGoldenPlainHeredoc(t *testing.T) {
	fx := golden.PlainHeredoc()
	got, err := Lex(fx.Tokens.Fake(), fx.Source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []tokenkind.Event{
		tokenkind.EventHeredocBeg,
		tokenkind.EventNewline,
		tokenkind.EventStringContent,
		tokenkind.EventHeredocEnd,
	}
	assertEventSequence(t, got.Tokens, want)
}

func TestGoldenDashHeredocSplitsOnBackslashNewline(t *testing.T) {
	fx := golden.DashHeredoc()
	got, err := Lex(fx.Tokens.Fake(), fx.Source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	foundSplit := false
	for _, tok := range got.Tokens {
		if tok.Event == tokenkind.EventStringContent && string(tok.Value) == "ab\\\n" {
			foundSplit = true
		}
	}
	if !foundSplit {
		t.Errorf("expected a split segment ending in a backslash-newline, got %+v", got.Tokens)
	}
}

func TestGoldenDedentHeredocEmitsIgnoredSpace(t *testing.T) {
	fx := golden.DedentHeredoc()
	got, err := Lex(fx.Tokens.Fake(), fx.Source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Body "  ab\n    cd\n": common dedent is 2 columns (min of 2 and 4), so
	// each line strips exactly 2 leading columns into its own on_ignored_sp
	// token and keeps the rest — pinning both the stripped and remaining
	// byte split, not just that some on_ignored_sp token exists.
	want := []struct {
		event  tokenkind.Event
		value  string
		line   int
		column int
	}{
		{tokenkind.EventHeredocBeg, "<<~FOO", 1, 0},
		{tokenkind.EventNewline, "\n", 1, 6},
		{tokenkind.EventIgnoredSpace, "  ", 2, 0},
		{tokenkind.EventStringContent, "ab\n", 2, 2},
		{tokenkind.EventIgnoredSpace, "  ", 3, 0},
		{tokenkind.EventStringContent, "  cd\n", 3, 2},
		{tokenkind.EventHeredocEnd, "FOO\n", 4, 0},
	}
	if len(got.Tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(got.Tokens), len(want), got.Tokens)
	}
	for i, w := range want {
		tok := got.Tokens[i]
		if tok.Event != w.event || string(tok.Value) != w.value || tok.Line != w.line || tok.Column != w.column {
			t.Errorf("token %d = {event:%v value:%q line:%d column:%d}, want {event:%v value:%q line:%d column:%d}",
				i, tok.Event, tok.Value, tok.Line, tok.Column, w.event, w.value, w.line, w.column)
		}
	}
}

func TestGoldenNestedHeredocsFlushInDeclarationOrder(t *testing.T) {
	fx := golden.NestedHeredocs()
	got, err := Lex(fx.Tokens.Fake(), fx.Source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var bodies []string
	for _, tok := range got.Tokens {
		if tok.Event == tokenkind.EventStringContent {
			bodies = append(bodies, string(tok.Value))
		}
	}
	if len(bodies) != 2 || bodies[0] != "a-body\n" || bodies[1] != "b-body\n" {
		t.Fatalf("expected bodies in declaration order [a-body, b-body], got %v", bodies)
	}
}

func assertEventSequence(t *testing.T, got []Token, want []tokenkind.Event) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Event != w {
			t.Errorf("token %d event = %v, want %v", i, got[i].Event, w)
		}
	}
}
