package parser

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ngicks/go-iterator-helper/hiter"
	"spheric.cloud/xiter"
)

// String parses out a constant string.
// The empty string matches every input without consuming anything.
func String(s string) Parser[string] {
	return Func(func(input string) iter.Seq[Result[string]] {
		if rest, ok := strings.CutPrefix(input, s); ok {
			return hiter.Once(Result[string]{Value: s, Rest: rest})
		}
		return xiter.Empty[Result[string]]()
	})
}

// StringFold is like String but compares using Unicode case folding.
// The value is the matched slice of the input, not s.
func StringFold(s string) Parser[string] {
	return Func(func(input string) iter.Seq[Result[string]] {
		rest := input
		for _, want := range s {
			got, size := utf8.DecodeRuneInString(rest)
			if size == 0 || !strings.EqualFold(string(got), string(want)) {
				return xiter.Empty[Result[string]]()
			}
			rest = rest[size:]
		}
		return hiter.Once(Result[string]{Value: input[:len(input)-len(rest)], Rest: rest})
	})
}

// IsCharacter parses a single character for which pred returns true.
// The value is the character as a string.
func IsCharacter(pred func(r rune) bool) Parser[string] {
	return Func(func(input string) iter.Seq[Result[string]] {
		r, size := utf8.DecodeRuneInString(input)
		if size == 0 || (r == utf8.RuneError && size == 1) || !pred(r) {
			return xiter.Empty[Result[string]]()
		}
		return hiter.Once(Result[string]{Value: input[:size], Rest: input[size:]})
	})
}

// Characters parses a single character that must be one of the supplied characters.
// It panics if set is empty.
func Characters(set string) Parser[string] {
	if set == "" {
		panic("parser: Characters requires a non-empty character set")
	}
	return IsCharacter(func(r rune) bool {
		return strings.ContainsRune(set, r)
	})
}

var (
	// Digit parses a single decimal digit.
	// The value stays a string so callers decide how digits combine.
	Digit = Characters("0123456789")

	// Whitespace parses a single ASCII whitespace character.
	Whitespace = Characters(" \t\n\r\v\f")

	// Letter parses a single Unicode letter.
	Letter = IsCharacter(unicode.IsLetter)

	// EndOfInput succeeds, consuming nothing, only on the empty string.
	EndOfInput Parser[struct{}] = Func(func(input string) iter.Seq[Result[struct{}]] {
		if input != "" {
			return xiter.Empty[Result[struct{}]]()
		}
		return hiter.Once(Result[struct{}]{})
	})
)

// Pure always succeeds with v and consumes nothing.
func Pure[T any](v T) Parser[T] {
	return Func(func(input string) iter.Seq[Result[T]] {
		return hiter.Once(Result[T]{Value: v, Rest: input})
	})
}

// Zero rejects all input.
func Zero[T any]() Parser[T] {
	return Func(func(string) iter.Seq[Result[T]] {
		return xiter.Empty[Result[T]]()
	})
}
