package main

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/apstndb/seuss/formats"
	"github.com/apstndb/seuss/parser"
)

// Grammar is a named parser whose values are ready for display.
type Grammar struct {
	Name        string
	Description string
	Parser      parser.Parser[any]
}

var ErrUnknownGrammar = errors.New("unknown grammar")

// erase converts the values of p with display so grammars of different types share a registry.
func erase[T any](p parser.Parser[T], display func(T) any) parser.Parser[any] {
	return parser.Map(p, display)
}

func asIs[T any](v T) any { return v }

func dateOnly(t time.Time) any { return t.Format(time.DateOnly) }

func durationString(d time.Duration) any { return d.String() }

func concat(parts []string) string { return strings.Join(parts, "") }

// pieces splits a run of "a" into one and two letter pieces in every possible way.
var pieces = parser.Many1(parser.OneOf(parser.String("a"), parser.String("aa")))

func builtinGrammars() []Grammar {
	return []Grammar{
		{"isodate", "calendar date in YYYY-MM-DD form", erase(formats.ISODate, dateOnly)},
		{"integer", "signed 64-bit decimal integer", erase(formats.Integer[int64](), asIs)},
		{"natural", "unsigned 64-bit decimal integer", erase(formats.Natural[uint64](), asIs)},
		{"decimal", "numeric literal with optional fraction and exponent", erase(formats.Decimal, asIs)},
		{"bool", "1, t, true, 0, f or false in any case", erase(formats.Bool, asIs)},
		{"duration", "duration such as 1h30m or 250ms", erase(formats.Duration, durationString)},
		{"string", "double-quoted string with Go escapes", erase(formats.QuotedString, asIs)},
		{"word", "one or more letters", erase(parser.Map(parser.Many1(parser.Letter), concat), asIs)},
		{"integer-list", "bracketed list of integers such as [1, 2, 3]", erase(formats.List(formats.Integer[int64]()), asIs)},
		{"date-list", "bracketed list of dates", erase(formats.List(formats.ISODate), func(ts []time.Time) any {
			return lo.Map(ts, func(t time.Time, _ int) any { return dateOnly(t) })
		})},
		{"pieces", "a run of a's split into pieces of one or two letters, ambiguous on purpose", erase(pieces, asIs)},
	}
}

// Registry holds the grammars the CLI can evaluate.
type Registry struct {
	grammars map[string]Grammar
}

func NewRegistry() *Registry {
	r := &Registry{grammars: make(map[string]Grammar)}
	for _, g := range builtinGrammars() {
		r.grammars[g.Name] = g
	}
	return r
}

// Register adds g. Names are case-insensitive and must be unique.
func (r *Registry) Register(g Grammar) error {
	name := strings.ToLower(g.Name)
	if name == "" {
		return errors.New("grammar name must not be empty")
	}
	if g.Parser == nil {
		return fmt.Errorf("grammar %q has no parser", g.Name)
	}
	if _, ok := r.grammars[name]; ok {
		return fmt.Errorf("grammar %q is already defined", g.Name)
	}
	g.Name = name
	r.grammars[name] = g
	return nil
}

func (r *Registry) Lookup(name string) (Grammar, error) {
	g, ok := r.grammars[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Grammar{}, fmt.Errorf("%w: %q", ErrUnknownGrammar, name)
	}
	return g, nil
}

// Grammars returns all grammars sorted by name.
func (r *Registry) Grammars() []Grammar {
	return slices.SortedFunc(maps.Values(r.grammars), func(a, b Grammar) int {
		return cmp.Compare(a.Name, b.Name)
	})
}

// traced wraps the grammar parser with tracing when logger is not nil.
func (g Grammar) traced(logger *zap.Logger) Grammar {
	g.Parser = parser.Trace(g.Name, g.Parser, logger)
	return g
}
