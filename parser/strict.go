package parser

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ngicks/go-iterator-helper/hiter"
	"github.com/ngicks/go-iterator-helper/x/exp/xiter"
)

// ErrNoParse is returned by ParseStrict when no result consumes the whole input.
var ErrNoParse = errors.New("no parse")

// AmbiguousParseError is returned by ParseStrict when more than one result consumes the whole input.
type AmbiguousParseError struct {
	Input string
}

func (e *AmbiguousParseError) Error() string {
	return fmt.Sprintf("ambiguous parse of %q", e.Input)
}

// ParseStrict returns the single result of p that consumes all of input.
// At most two results are pulled from the sequence.
func ParseStrict[T any](p Parser[T], input string) (T, error) {
	results := slices.Collect(xiter.Limit(Passthrough(p, EndOfInput).Parse(input), 2))
	switch len(results) {
	case 0:
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrNoParse, input)
	case 1:
		return results[0].Value, nil
	default:
		var zero T
		return zero, &AmbiguousParseError{Input: input}
	}
}

// ParseAll collects every result of p on input.
// It does not terminate if the result sequence is infinite.
func ParseAll[T any](p Parser[T], input string) []Result[T] {
	return slices.Collect(p.Parse(input))
}

// First returns the first result of p on input, computing nothing beyond it.
func First[T any](p Parser[T], input string) (Result[T], bool) {
	return hiter.Nth(0, p.Parse(input))
}

// Take returns at most n results of p on input.
func Take[T any](p Parser[T], input string, n int) []Result[T] {
	return slices.Collect(xiter.Limit(p.Parse(input), n))
}
