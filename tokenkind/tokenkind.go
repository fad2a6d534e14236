// Package tokenkind translates upstream lexer token kinds into the
// reference lexer's closed event-tag set. The mapping is many-to-one:
// most operator-shaped upstream kinds collapse onto a single generic
// "operator" event, and all keyword kinds collapse onto a single generic
// "keyword" event.
//
// The mapping table itself is generated by ../codegen from
// ../codegen/tokenkinds.yaml; this file holds the lookup and the
// fail-fast diagnostic for kinds the table doesn't know about.
package tokenkind

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Event is a symbolic tag from the reference lexer's closed event set.
type Event string

// Generic events that many distinct upstream kinds collapse onto.
const (
	EventOperator Event = "operator"
	EventKeyword  Event = "keyword"
)

// Well-known events referenced directly by the reorder state machine (E)
// and the comparison-flavor table (C).
const (
	EventHeredocBeg      Event = "heredoc_beg"
	EventHeredocEnd      Event = "heredoc_end"
	EventNewline         Event = "nl"
	EventIgnoredNewline  Event = "ignored_nl"
	EventComment         Event = "comment"
	EventStringContent   Event = "tstring_content"
	EventIgnoredSpace    Event = "on_ignored_sp"
	EventIdent           Event = "ident"
	EventEmbExprBeg      Event = "embexpr_beg"
	EventEmbExprEnd      Event = "embexpr_end"
	EventRegexpEnd       Event = "regexp_end"
	EventEndContent      Event = "eof"
)

// UnknownKindError is returned when an upstream kind has no entry in the
// map. This is a programming error: the transform aborts rather than
// guessing.
type UnknownKindError struct {
	Kind       string
	SuggestedEvent string // best-guess near match among known kinds, if any
}

func (e *UnknownKindError) Error() string {
	if e.SuggestedEvent != "" {
		return fmt.Sprintf("tokenkind: unknown upstream kind %q (did you mean %q?)", e.Kind, e.SuggestedEvent)
	}
	return fmt.Sprintf("tokenkind: unknown upstream kind %q", e.Kind)
}

// Map is a total function from upstream kind names to reference events,
// populated once at construction and never mutated afterward.
type Map struct {
	table map[string]Event
	kinds []string // sorted, for fuzzy suggestions
}

// New builds a Map from a kind->event table, as produced by the codegen
// tool from codegen/tokenkinds.yaml. Entries are copied defensively.
func New(table map[string]Event) *Map {
	m := &Map{
		table: make(map[string]Event, len(table)),
		kinds: make([]string, 0, len(table)),
	}
	for k, v := range table {
		m.table[k] = v
		m.kinds = append(m.kinds, k)
	}
	sort.Strings(m.kinds)
	return m
}

// Translate returns the reference event for an upstream kind, or an
// *UnknownKindError if the kind has no entry.
func (m *Map) Translate(kind string) (Event, error) {
	if event, ok := m.table[kind]; ok {
		return event, nil
	}
	return "", &UnknownKindError{
		Kind:           kind,
		SuggestedEvent: m.closestKind(kind),
	}
}

// closestKind returns the known kind name that most resembles kind, using
// fuzzy subsequence matching, for the diagnostic attached to
// UnknownKindError. Returns "" if nothing resembles it at all.
func (m *Map) closestKind(kind string) string {
	ranks := fuzzy.RankFindFold(kind, m.kinds)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// Len returns the number of entries in the map, mostly useful for tests.
func (m *Map) Len() int {
	return len(m.table)
}
