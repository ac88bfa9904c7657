// Package parser provides a small algebra of composable parsers for formatted text.
//
// A parser for things is a function from strings to sequences of pairs of
// things and strings. Every Parser[T] in this package maps an input string to
// a lazily produced iter.Seq of Result[T] values, each carrying a parsed value
// and the unconsumed remainder of the input.
//
// # Failure and Ambiguity
//
// There is no error value in the core. A parser that cannot apply to its
// input yields an empty sequence. A parser that can apply in several ways
// yields several results, in a deterministic order. Callers that want exactly
// one fully consuming result use ParseStrict, which turns "no result" and
// "more than one result" into Go errors.
//
// # Laziness
//
// Result sequences are pull-based. Nothing is computed until the sequence is
// ranged over, and breaking out of the loop stops all upstream work. This is
// what keeps choice and repetition usable on grammars whose full result set
// would be very large or unbounded.
//
// # Building Blocks
//
//   - Primitives: String, StringFold, Characters, IsCharacter, Digit, Whitespace,
//     Letter, Pure, Zero, EndOfInput
//   - Sequencing: Map, AndThen, Then, Passthrough, Lift, Sequence
//   - Choice: OneOf, Or, Optional, Enum
//   - Repetition: Replicate, Many, Many1, SepBy
//   - Filtering: WithValidation, WithTransform
//
// # Usage Examples
//
//	twoDigits := parser.Map(parser.Replicate(2, parser.Digit), func(ds []string) string {
//	    return strings.Join(ds, "")
//	})
//	v, err := parser.ParseStrict(twoDigits, "42")
//
// Parsers are immutable and hold no state between calls, so a single value
// may be shared by many larger parsers and used from many goroutines.
package parser
