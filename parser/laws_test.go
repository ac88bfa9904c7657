package parser_test

import (
	"strings"
	"testing"

	"github.com/apstndb/lox"
	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"

	"github.com/apstndb/seuss/parser"
)

var lawInputs = []string{"", "4", "42", "420", "1989-06", "abc", "a1", "aab"}

func assertSameResults[T any](t *testing.T, name string, want, got parser.Parser[T]) {
	t.Helper()
	for _, input := range lawInputs {
		if diff := cmp.Diff(parser.ParseAll(want, input), parser.ParseAll(got, input)); diff != "" {
			t.Errorf("%s: results differ on %q (-want +got):\n%s", name, input, diff)
		}
	}
}

// ambiguousPrefix matches "a", "aa" or any single digit, yielding several results on some inputs.
var ambiguousPrefix = parser.OneOf(parser.String("a"), parser.String("aa"), parser.Digit)

func TestMonadLaws(t *testing.T) {
	t.Run("left identity", func(t *testing.T) {
		assertSameResults(t, "Pure(42) >>= String",
			parser.String("42"),
			parser.AndThen(parser.Pure("42"), parser.String))

		f := func(s string) parser.Parser[string] {
			return parser.Map(parser.Optional(parser.Digit), func(d *string) string {
				return s + lo.FromPtr(d)
			})
		}
		assertSameResults(t, "Pure(x) >>= f", f("x"), parser.AndThen(parser.Pure("x"), f))
	})

	t.Run("right identity", func(t *testing.T) {
		assertSameResults(t, "Digit >>= Pure", parser.Digit, parser.AndThen(parser.Digit, parser.Pure[string]))
		assertSameResults(t, "ambiguous >>= Pure", ambiguousPrefix, parser.AndThen(ambiguousPrefix, parser.Pure[string]))
	})

	t.Run("associativity", func(t *testing.T) {
		f := func(s string) parser.Parser[string] {
			return parser.Map(parser.OneOf(parser.Digit, parser.String("a"), parser.Pure("")), func(next string) string {
				return s + next
			})
		}
		g := func(s string) parser.Parser[int] {
			return parser.OneOf(parser.Pure(len(s)), parser.Map(parser.Digit, func(string) int { return -len(s) }))
		}

		assertSameResults(t, "(p >>= f) >>= g",
			parser.AndThen(parser.AndThen(ambiguousPrefix, f), g),
			parser.AndThen(ambiguousPrefix, func(x string) parser.Parser[int] {
				return parser.AndThen(f(x), g)
			}))
	})
}

func TestFunctorLaws(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		assertSameResults(t, "Map(Digit, id)", parser.Digit, parser.Map(parser.Digit, lox.Identity[string]))
		assertSameResults(t, "Map(ambiguous, id)", ambiguousPrefix, parser.Map(ambiguousPrefix, lox.Identity[string]))
	})

	t.Run("composition", func(t *testing.T) {
		f := strings.ToUpper
		g := func(s string) int { return len(s) * 10 }
		assertSameResults(t, "Map(Map(p, f), g)",
			parser.Map(ambiguousPrefix, func(s string) int { return g(f(s)) }),
			parser.Map(parser.Map(ambiguousPrefix, f), g))
	})
}
