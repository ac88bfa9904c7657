package parser

import (
	"iter"
	"slices"

	"spheric.cloud/xiter"
)

// Map runs f over every value produced by p. Remainders are untouched.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return Func(func(input string) iter.Seq[Result[B]] {
		return xiter.Map(p.Parse(input), func(r Result[A]) Result[B] {
			return Result[B]{Value: f(r.Value), Rest: r.Rest}
		})
	})
}

// AndThen runs the parser built by f from each value of p on the remainder after that value.
// Results are flattened in order: everything continuing p's first result comes
// before anything continuing its second.
func AndThen[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return Func(func(input string) iter.Seq[Result[B]] {
		return xiter.Flatmap(p.Parse(input), func(r Result[A]) iter.Seq[Result[B]] {
			return f(r.Value).Parse(r.Rest)
		})
	})
}

// Then runs q after p, discarding p's value.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return AndThen(p, func(A) Parser[B] { return q })
}

// Passthrough runs q after p, keeping p's value and discarding q's.
// It is typically used to assert a trailing condition such as EndOfInput.
func Passthrough[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return AndThen(p, func(a A) Parser[A] {
		return Map(q, func(B) A { return a })
	})
}

// Lift runs a then b and combines both values with f.
// If a has m results and b has n results after each, the output has m×n results.
func Lift[A, B, C any](f func(A, B) C, a Parser[A], b Parser[B]) Parser[C] {
	return AndThen(a, func(x A) Parser[C] {
		return Map(b, func(y B) C { return f(x, y) })
	})
}

// OneOf makes a parser that matches any of the given parsers against the same input.
// Every alternative contributes its results, in argument order; nothing is
// deduplicated. An alternative is not run until the ones before it are exhausted.
func OneOf[T any](parsers ...Parser[T]) Parser[T] {
	parsers = slices.Clone(parsers)
	return Func(func(input string) iter.Seq[Result[T]] {
		return xiter.Flatmap(slices.Values(parsers), func(p Parser[T]) iter.Seq[Result[T]] {
			return p.Parse(input)
		})
	})
}

// Or is the binary form of OneOf.
func Or[T any](a, b Parser[T]) Parser[T] {
	return OneOf(a, b)
}

// OrElse yields a's results, and b's only when a yields nothing at all.
func OrElse[T any](a, b Parser[T]) Parser[T] {
	return Func(func(input string) iter.Seq[Result[T]] {
		return func(yield func(Result[T]) bool) {
			matched := false
			for r := range a.Parse(input) {
				matched = true
				if !yield(r) {
					return
				}
			}
			if matched {
				return
			}
			for r := range b.Parse(input) {
				if !yield(r) {
					return
				}
			}
		}
	})
}

// Sequence runs the parsers one after another and collects their values in order.
func Sequence[T any](parsers ...Parser[T]) Parser[[]T] {
	acc := Pure([]T{})
	for _, p := range slices.Backward(parsers) {
		acc = Lift(cons[T], p, acc)
	}
	return acc
}

func cons[T any](x T, xs []T) []T {
	return append([]T{x}, xs...)
}
