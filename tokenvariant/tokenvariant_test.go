package tokenvariant

import (
	"testing"

	"github.com/aledsdavies/lexcompat/tokenkind"
)

func tok(flavor Flavor, line, col int, event tokenkind.Event, value string, state State) Token {
	return Token{
		Tuple:  Tuple{Line: line, Column: col, Event: event, Value: []byte(value), State: state},
		Flavor: flavor,
	}
}

func tup(line, col int, event tokenkind.Event, value string, state State) Tuple {
	return Tuple{Line: line, Column: col, Event: event, Value: []byte(value), State: state}
}

func TestPlainRequiresFullEquality(t *testing.T) {
	got := tok(Plain, 1, 0, tokenkind.EventOperator, "+", StateExprArg)
	want := tup(1, 0, tokenkind.EventOperator, "+", StateExprArg)
	if !Equal(got, want) {
		t.Fatal("expected equal")
	}

	diffState := tup(1, 0, tokenkind.EventOperator, "+", StateLabeled)
	if Equal(got, diffState) {
		t.Fatal("expected plain flavor to require exact state match")
	}
}

func TestEndContentComparesFirstLineOnly(t *testing.T) {
	got := tok(EndContent, 3, 0, tokenkind.EventEndContent, "trailing\nmore junk", StateEndContent)
	want := tup(3, 0, tokenkind.EventEndContent, "trailing\nsomething else entirely", StateEndContent)
	if !Equal(got, want) {
		t.Fatal("expected EndContent to ignore everything past the first newline")
	}
}

func TestCommentIgnoresState(t *testing.T) {
	got := tok(Comment, 2, 4, tokenkind.EventComment, "# hi", StateExprArg)
	want := tup(2, 4, tokenkind.EventComment, "# hi", StateLabeled)
	if !Equal(got, want) {
		t.Fatal("expected Comment to ignore state")
	}
}

func TestHeredocEndIgnoresState(t *testing.T) {
	got := tok(HeredocEnd, 4, 0, tokenkind.EventHeredocEnd, "FOO\n", 0)
	want := tup(4, 0, tokenkind.EventHeredocEnd, "FOO\n", StateExprArgAny)
	if !Equal(got, want) {
		t.Fatal("expected HeredocEnd to ignore state")
	}
}

func TestIdentAcceptsExprArgAnyOnEitherSide(t *testing.T) {
	got := tok(Ident, 1, 0, tokenkind.EventIdent, "foo", StateExprArgAny)
	want := tup(1, 0, tokenkind.EventIdent, "foo", 0)
	if !Equal(got, want) {
		t.Fatal("expected Ident to accept EXPR_ARG_ANY divergence from our side")
	}

	got2 := tok(Ident, 1, 0, tokenkind.EventIdent, "foo", 0)
	want2 := tup(1, 0, tokenkind.EventIdent, "foo", StateExprArgAny)
	if !Equal(got2, want2) {
		t.Fatal("expected Ident to accept EXPR_ARG_ANY divergence from reference side")
	}

	got3 := tok(Ident, 1, 0, tokenkind.EventIdent, "foo", StateLabeled)
	want3 := tup(1, 0, tokenkind.EventIdent, "foo", StateExprArg)
	if Equal(got3, want3) {
		t.Fatal("expected Ident to still reject unrelated state divergence")
	}
}

func TestIdentAcceptsExprEndLabelOnEitherSide(t *testing.T) {
	got := tok(Ident, 1, 0, tokenkind.EventIdent, "foo", StateExprLabel)
	want := tup(1, 0, tokenkind.EventIdent, "foo", 0)
	if !Equal(got, want) {
		t.Fatal("expected Ident to accept EXPR_END|EXPR_LABEL divergence")
	}
}

func TestIgnoredNewlineOverlapRule(t *testing.T) {
	// Our side carries EXPR_ARG|EXPR_LABELED; reference overlaps on one bit.
	got := tok(IgnoredNewline, 5, 0, tokenkind.EventIgnoredNewline, "\n", StateExprArg|StateLabeled)
	want := tup(5, 0, tokenkind.EventIgnoredNewline, "\n", StateExprArg)
	if !Equal(got, want) {
		t.Fatal("expected IgnoredNewline to accept overlapping EXPR_ARG|EXPR_LABELED bits")
	}

	// No overlap at all, and not equal -> reject.
	got2 := tok(IgnoredNewline, 5, 0, tokenkind.EventIgnoredNewline, "\n", StateExprArg|StateLabeled)
	want2 := tup(5, 0, tokenkind.EventIgnoredNewline, "\n", StateExprEndLabelMask())
	if Equal(got2, want2) {
		t.Fatal("expected IgnoredNewline to reject non-overlapping state")
	}
}

func TestFlavorForSelectsExpectedFlavorPerEvent(t *testing.T) {
	cases := []struct {
		name                    string
		event                   tokenkind.Event
		referenceInExprEndLabel bool
		want                    Flavor
	}{
		{"end content", tokenkind.EventEndContent, false, EndContent},
		{"comment", tokenkind.EventComment, false, Comment},
		{"heredoc end", tokenkind.EventHeredocEnd, false, HeredocEnd},
		{"ignored newline", tokenkind.EventIgnoredNewline, false, IgnoredNewline},
		{"plain identifier", tokenkind.EventIdent, false, Ident},
		{"identifier, reference in expr-end-label", tokenkind.EventIdent, true, Ident},
		{"embexpr_end outside expr-end-label", tokenkind.EventEmbExprEnd, false, Plain},
		{"embexpr_end inside expr-end-label", tokenkind.EventEmbExprEnd, true, Ident},
		{"operator falls back to plain", tokenkind.EventOperator, false, Plain},
		{"keyword falls back to plain", tokenkind.EventKeyword, true, Plain},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FlavorFor(c.event, c.referenceInExprEndLabel)
			if got != c.want {
				t.Errorf("FlavorFor(%v, %v) = %v, want %v", c.event, c.referenceInExprEndLabel, got, c.want)
			}
		})
	}
}

func TestFlavorString(t *testing.T) {
	if got := Plain.String(); got != "Plain" {
		t.Errorf("Plain.String() = %q, want %q", got, "Plain")
	}
	if got := Flavor(99).String(); got != "Flavor(99)" {
		t.Errorf("Flavor(99).String() = %q, want %q", got, "Flavor(99)")
	}
}

func TestDiffReportsMismatchCount(t *testing.T) {
	got := []Token{tok(Plain, 1, 0, tokenkind.EventOperator, "+", 0)}
	want := []Tuple{
		tup(1, 0, tokenkind.EventOperator, "+", 0),
		tup(2, 0, tokenkind.EventOperator, "-", 0),
	}
	diff := Diff(got, want)
	if diff == "" {
		t.Fatal("expected a diff for mismatched lengths")
	}
}
