package parser

import (
	"fmt"
	"iter"

	"github.com/ngicks/go-iterator-helper/x/exp/xiter"
	"golang.org/x/exp/constraints"
)

// Validator is a function type for value validation.
type Validator[T any] func(value T) error

// ChainValidators combines multiple validators into a single validator.
// All validators must pass for the value to be considered valid.
func ChainValidators[T any](validators ...Validator[T]) Validator[T] {
	return func(value T) error {
		for _, validator := range validators {
			if err := validator(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithValidation drops every result of p whose value fails one of the validators.
// A rejected value is an ordinary parse failure; the validator's error is not surfaced.
func WithValidation[T any](p Parser[T], validators ...Validator[T]) Parser[T] {
	validate := ChainValidators(validators...)
	return Func(func(input string) iter.Seq[Result[T]] {
		return xiter.Filter(func(r Result[T]) bool {
			return validate(r.Value) == nil
		}, p.Parse(input))
	})
}

// RangeValidator creates a validator for ordered numbers with optional bounds.
func RangeValidator[T constraints.Integer | constraints.Float](min, max *T) Validator[T] {
	return func(v T) error {
		if min != nil && v < *min {
			return fmt.Errorf("value %v is less than minimum %v", v, *min)
		}
		if max != nil && v > *max {
			return fmt.Errorf("value %v is greater than maximum %v", v, *max)
		}
		return nil
	}
}
