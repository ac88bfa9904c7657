// Package batch evaluates a parser against many inputs concurrently.
//
// Outcomes are returned in input order regardless of which worker finished first.
package batch

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"

	"github.com/apstndb/seuss/parser"
)

// DefaultLimit bounds the number of results collected per input when Options.All is set.
const DefaultLimit = 100

// Options controls how inputs are evaluated.
type Options struct {
	// Parallelism is the maximum number of inputs evaluated at once. Values below 1 mean 1.
	Parallelism int

	// All collects every result, including partial and ambiguous ones,
	// instead of requiring exactly one result that consumes the whole input.
	All bool

	// Limit caps the results collected per input in All mode. Zero means DefaultLimit.
	Limit int

	// Done, if set, is called from the worker goroutine after each input is evaluated.
	Done func()
}

// Outcome is the evaluation of a single input.
type Outcome[T any] struct {
	Index int
	Input string

	// Value is set when Err is nil and the evaluation was strict.
	Value T

	// Results is set in All mode.
	Results []parser.Result[T]

	Err error
}

// OK reports whether the input was accepted.
func (o Outcome[T]) OK() bool {
	return o.Err == nil
}

// Evaluate runs p on a single input.
func Evaluate[T any](p parser.Parser[T], input string, opts Options) Outcome[T] {
	if !opts.All {
		v, err := parser.ParseStrict(p, input)
		return Outcome[T]{Input: input, Value: v, Err: err}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := parser.Take(p, input, limit)
	if len(results) == 0 {
		return Outcome[T]{Input: input, Err: fmt.Errorf("%w: %q", parser.ErrNoParse, input)}
	}
	return Outcome[T]{Input: input, Results: results}
}

// Run evaluates p against every input using at most opts.Parallelism goroutines.
// The returned slice has one Outcome per input in the same order.
// If ctx is cancelled, inputs not yet started are reported with the context error
// and Run returns it.
func Run[T any](ctx context.Context, p parser.Parser[T], inputs []string, opts Options) ([]Outcome[T], error) {
	outcomes := make([]Outcome[T], len(inputs))

	wp := pool.New().WithContext(ctx).WithMaxGoroutines(max(opts.Parallelism, 1))
	for i, input := range inputs {
		wp.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = Outcome[T]{Index: i, Input: input, Err: err}
				return err
			}

			outcome := Evaluate(p, input, opts)
			outcome.Index = i
			outcomes[i] = outcome
			if opts.Done != nil {
				opts.Done()
			}
			return nil
		})
	}

	if err := wp.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

// Failed returns the outcomes that were not accepted.
func Failed[T any](outcomes []Outcome[T]) []Outcome[T] {
	return lo.Reject(outcomes, func(o Outcome[T], _ int) bool { return o.OK() })
}

// IsAmbiguous reports whether err is an ambiguity failure.
func IsAmbiguous(err error) bool {
	_, ok := lo.ErrorsAs[*parser.AmbiguousParseError](err)
	return ok
}
