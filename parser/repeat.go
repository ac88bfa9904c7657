package parser

import (
	"fmt"
	"iter"

	"github.com/ngicks/go-iterator-helper/hiter"
	"github.com/ngicks/go-iterator-helper/x/exp/xiter"
)

// Replicate runs p exactly n times and collects the values in order.
// Replicate(0, p) succeeds with an empty slice without ever running p.
// It panics if n is negative.
func Replicate[T any](n int, p Parser[T]) Parser[[]T] {
	if n < 0 {
		panic(fmt.Sprintf("parser: Replicate count must not be negative, got %d", n))
	}
	acc := Pure([]T{})
	for range n {
		acc = Lift(cons[T], p, acc)
	}
	return acc
}

// Many runs p zero or more times.
//
// At each position every result of p is continued recursively. The empty
// "stop here" result is produced only where p does not match at all, so Many
// is greedy. Results of p that consume no input are ignored; this keeps Many
// finite on finite input even when p can match the empty string.
func Many[T any](p Parser[T]) Parser[[]T] {
	var many Parser[[]T]
	many = Func(func(input string) iter.Seq[Result[[]T]] {
		return func(yield func(Result[[]T]) bool) {
			matched := false
			for r := range p.Parse(input) {
				if len(r.Rest) >= len(input) {
					continue
				}
				matched = true
				for tail := range many.Parse(r.Rest) {
					if !yield(Result[[]T]{Value: cons(r.Value, tail.Value), Rest: tail.Rest}) {
						return
					}
				}
			}
			if !matched {
				yield(Result[[]T]{Value: []T{}, Rest: input})
			}
		}
	})
	return many
}

// Many1 runs p one or more times.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Lift(cons[T], p, Many(p))
}

// SepBy parses zero or more p separated by sep, greedily.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return OrElse(SepBy1(p, sep), Pure([]T{}))
}

// SepBy1 parses one or more p separated by sep, greedily.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Lift(cons[T], p, Many(Then(sep, p)))
}

// Optional yields every result of p as a non-nil pointer, followed by a nil
// result that consumes nothing.
func Optional[T any](p Parser[T]) Parser[*T] {
	some := Map(p, func(v T) *T { return &v })
	return Func(func(input string) iter.Seq[Result[*T]] {
		return xiter.Concat(some.Parse(input), hiter.Once(Result[*T]{Rest: input}))
	})
}
