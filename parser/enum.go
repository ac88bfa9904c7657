package parser

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/samber/lo"
)

// EnumParser parses one of a fixed set of words into values of type T.
// Matching is case-insensitive unless CaseSensitive is used.
//
// Every word that prefixes the input yields a result, longest word first,
// so "t" and "true" are both candidates for the input "true".
type EnumParser[T any] struct {
	values      map[string]T
	words       []string
	caseMatters bool
	choice      Parser[T]
}

// Enum creates a case-insensitive enum parser with the given words.
func Enum[T any](values map[string]T) *EnumParser[T] {
	words := slices.SortedFunc(maps.Keys(values), func(a, b string) int {
		return cmp.Or(cmp.Compare(len(b), len(a)), cmp.Compare(a, b))
	})
	return newEnumParser(maps.Clone(values), words, false)
}

func newEnumParser[T any](values map[string]T, words []string, caseMatters bool) *EnumParser[T] {
	return &EnumParser[T]{
		values:      values,
		words:       words,
		caseMatters: caseMatters,
		choice: OneOf(lo.Map(words, func(w string, _ int) Parser[T] {
			literal := lo.Ternary(caseMatters, String(w), StringFold(w))
			return Map(literal, func(string) T { return values[w] })
		})...),
	}
}

// EnumStrings creates a case-insensitive enum parser whose values are the words themselves.
func EnumStrings(words ...string) *EnumParser[string] {
	return Enum(lo.SliceToMap(words, func(w string) (string, string) { return w, w }))
}

// CaseSensitive returns a copy of the parser that matches words exactly.
func (p *EnumParser[T]) CaseSensitive() *EnumParser[T] {
	return newEnumParser(p.values, p.words, true)
}

// Words returns the accepted words, longest first.
func (p *EnumParser[T]) Words() []string {
	return slices.Clone(p.words)
}

// Parse implements the Parser interface.
func (p *EnumParser[T]) Parse(input string) iter.Seq[Result[T]] {
	return p.choice.Parse(input)
}
