package parser

import (
	"iter"

	"github.com/ngicks/go-iterator-helper/hiter"
	"spheric.cloud/xiter"
)

// WithTransform converts each value of p with transform.
// Results for which transform returns an error are dropped.
func WithTransform[T, U any](p Parser[T], transform func(T) (U, error)) Parser[U] {
	return Func(func(input string) iter.Seq[Result[U]] {
		return xiter.Flatmap(p.Parse(input), func(r Result[T]) iter.Seq[Result[U]] {
			v, err := transform(r.Value)
			if err != nil {
				return xiter.Empty[Result[U]]()
			}
			return hiter.Once(Result[U]{Value: v, Rest: r.Rest})
		})
	})
}
