package parser

import (
	"iter"

	"spheric.cloud/xiter"
)

// Result is a single outcome of a parse: the parsed value and what is left of the input.
// Rest is always a suffix of the text passed to Parse.
type Result[T any] struct {
	Value T
	Rest  string
}

// Parser is the core interface for parsers producing values of type T.
type Parser[T any] interface {
	// Parse returns every way this parser can match a prefix of input.
	// An empty sequence means the parser does not apply.
	Parse(input string) iter.Seq[Result[T]]
}

// BaseParser wraps a parse function into a Parser.
// It is the single concrete implementation used by every constructor in this package.
type BaseParser[T any] struct {
	ParseFunc func(input string) iter.Seq[Result[T]]
}

// Parse implements the Parser interface.
// A BaseParser without a ParseFunc rejects all input.
func (p *BaseParser[T]) Parse(input string) iter.Seq[Result[T]] {
	if p.ParseFunc == nil {
		return xiter.Empty[Result[T]]()
	}
	return p.ParseFunc(input)
}

// Func creates a parser from a parse function.
func Func[T any](f func(input string) iter.Seq[Result[T]]) Parser[T] {
	return &BaseParser[T]{ParseFunc: f}
}

// Lazy defers building a parser until it is first used on an input.
// It allows recursive grammars to refer to parsers that are defined later.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	return Func(func(input string) iter.Seq[Result[T]] {
		return func(yield func(Result[T]) bool) {
			for r := range build().Parse(input) {
				if !yield(r) {
					return
				}
			}
		}
	})
}

// Results is a convenience for ranging over values and remainders as pairs.
func Results[T any](p Parser[T], input string) iter.Seq2[T, string] {
	return func(yield func(T, string) bool) {
		for r := range p.Parse(input) {
			if !yield(r.Value, r.Rest) {
				return
			}
		}
	}
}
