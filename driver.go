package lexcompat

import (
	"github.com/aledsdavies/lexcompat/fixup"
	"github.com/aledsdavies/lexcompat/internal/fingerprint"
	"github.com/aledsdavies/lexcompat/offsetindex"
	"github.com/aledsdavies/lexcompat/reorder"
	"github.com/aledsdavies/lexcompat/tokenkind"
	"github.com/aledsdavies/lexcompat/tokenvariant"
	"github.com/aledsdavies/lexcompat/upstream"
)

// Lex runs the full transform: it calls up.Lex to get the raw upstream
// token stream, maps each kind to a reference event, applies the BOM
// fixup, folds the mapped stream through the heredoc/reorder state
// machine, applies the regexp-end fixup, and returns the result in the
// reference-comparable shape. Errors/warnings/comments from the upstream
// lexer pass through unchanged; an unknown upstream kind aborts the
// transform immediately, as does a failing upstream call itself.
//
// ApplyBOM runs before the reorder fold, not after: for a source
// consisting of nothing but a BOM, the only mapped tuple is the
// terminal end-of-input token itself, and the reorder machine's Finish
// only keeps that token when it carries bytes. Merging the BOM into it
// has to happen before Finish decides whether to strip it, or the BOM
// is lost with nothing left to carry it.
func Lex(up upstream.Lexer, source []byte, opts ...Option) (Result, error) {
	cfg := resolveConfig(opts)

	raw, err := up.Lex(source)
	if err != nil {
		return Result{}, &UpstreamError{Err: err}
	}

	idx := offsetindex.New(source)
	kinds := tokenkind.Default()

	tuples, err := mapTokens(raw.Tokens, idx, kinds)
	if err != nil {
		return Result{}, err
	}

	tuples = fixup.ApplyBOM(source, tuples)
	tuples = foldReorder(tuples, cfg.TabWidth)
	tuples = fixup.ApplyRegexpEndState(tuples)

	return Result{
		Tokens:      toTokens(tuples),
		Comments:    toComments(raw.Comments, idx),
		Errors:      raw.Errors,
		Warnings:    raw.Warnings,
		Fingerprint: fingerprint.Of(source),
	}, nil
}

// mapTokens translates every upstream (kind, offset, state) pair into a
// reference-shaped tuple. An unknown kind aborts immediately.
func mapTokens(pairs []upstream.Pair, idx *offsetindex.Index, kinds *tokenkind.Map) ([]tokenvariant.Tuple, error) {
	out := make([]tokenvariant.Tuple, 0, len(pairs))
	for _, p := range pairs {
		event, err := kinds.Translate(p.Token.Kind)
		if err != nil {
			return nil, err
		}
		line, col := idx.Location(p.Token.StartOffset)
		out = append(out, tokenvariant.Tuple{
			Line:   line,
			Column: col,
			Event:  event,
			Value:  p.Token.Value,
			State:  tokenvariant.State(p.State),
		})
	}
	return out, nil
}

// foldReorder drives the mapped tuples through the stream reorder state
// machine, treating the last tuple as the upstream's terminal
// end-of-input token to strip out of the final output.
func foldReorder(tuples []tokenvariant.Tuple, tabWidth int) []tokenvariant.Tuple {
	if len(tuples) == 0 {
		return nil
	}

	m := reorder.New(tabWidth)
	for _, t := range tuples[:len(tuples)-1] {
		m.Feed(t)
	}
	return m.Finish(tuples[len(tuples)-1])
}

// toTokens attaches each tuple's comparison Flavor before handing it back
// to the caller, so a consumer comparing Result.Tokens against a
// reference-produced stream (tokenvariant.Equal / tokenvariant.Diff) never
// has to re-derive the flavor from the event by hand.
//
// embexpr_end takes the Ident flavor only when the token itself was
// captured in EXPR_END|EXPR_LABEL state, so that state bit (already present
// on our own tuple, copied from the upstream lexer's state) is what selects
// between the Ident and Plain flavors for that event.
func toTokens(tuples []tokenvariant.Tuple) []Token {
	if len(tuples) == 0 {
		return nil
	}
	out := make([]Token, len(tuples))
	for i, t := range tuples {
		exprEndLabel := t.State.Has(tokenvariant.StateExprEndLabelMask())
		flavor := tokenvariant.FlavorFor(t.Event, exprEndLabel)
		out[i] = Token{Token: tokenvariant.Token{Tuple: t, Flavor: flavor}}
	}
	return out
}

func toComments(comments []upstream.Token, idx *offsetindex.Index) []Comment {
	if len(comments) == 0 {
		return nil
	}
	out := make([]Comment, len(comments))
	for i, c := range comments {
		line, col := idx.Location(c.StartOffset)
		out[i] = Comment{Line: line, Column: col, Kind: c.Kind, Value: c.Value}
	}
	return out
}
